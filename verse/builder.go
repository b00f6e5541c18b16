// Package verse walks classified page lines top to bottom, pairs chord
// lines with the lyric lines beneath them, and groups lyric lines into
// role-attributed verses.
package verse

import (
	"sort"

	"github.com/tsawler/songbook/chords"
	"github.com/tsawler/songbook/classify"
	"github.com/tsawler/songbook/lang"
	"github.com/tsawler/songbook/model"
	"github.com/tsawler/songbook/position"
)

// state is the builder's finite-state machine state.
type state int

const (
	noActiveVerse state = iota
	inVerse
)

// Builder groups lyric lines into verses. It is a pure transformation;
// one Builder may be reused across documents.
type Builder struct {
	cfg     *lang.Config
	locator *chords.Locator
	mapper  position.Mapper
}

// NewBuilder creates a verse builder using the given chord locator and
// position-mapping strategy.
func NewBuilder(cfg *lang.Config, locator *chords.Locator, mapper position.Mapper) *Builder {
	return &Builder{cfg: cfg, locator: locator, mapper: mapper}
}

// Build processes classified lines in reading order and returns the
// song's verses. Title, kapodaster, and comment lines never enter a
// verse; chord lines never start or end one. Plain text seen before any
// role marker is buffered into a single unattributed verse placed at
// the front of the result, internal order preserved.
func (b *Builder) Build(lines []classify.ClassifiedLine) []model.Verse {
	var verses []model.Verse
	var unattributed []model.VerseLine

	st := noActiveVerse
	role := ""
	var current []model.VerseLine

	flush := func() {
		if st == inVerse && len(current) > 0 {
			verses = append(verses, model.Verse{Role: role, Lines: current})
		}
		current = nil
	}

	for i, line := range lines {
		switch line.Role {
		case classify.RoleMarkerText:
			flush()
			st = inVerse
			role = line.Marker
			if line.Remainder != "" {
				current = append(current, b.verseLine(line.Remainder, i, lines))
			}
			// An empty remainder means the marker stood alone; the
			// following plain lines supply the first verse lines.

		case classify.PlainText:
			vl := b.verseLine(line.Text, i, lines)
			if st == inVerse {
				current = append(current, vl)
			} else {
				unattributed = append(unattributed, vl)
			}

		case classify.ChordLine:
			// Consulted by the backward lookup only; never part of a
			// verse.

		case classify.Title, classify.Kapodaster, classify.Comment:
			// Song-level lines; the assembler records them.
		}
	}
	flush()

	if len(unattributed) > 0 {
		verses = append([]model.Verse{{Role: "", Lines: unattributed}}, verses...)
	}
	return verses
}

// verseLine builds one lyric line, resolving its chords against the
// nearest preceding chord line within the configured distance.
func (b *Builder) verseLine(text string, index int, lines []classify.ClassifiedLine) model.VerseLine {
	return model.VerseLine{
		Text:   text,
		Chords: b.chordsFor(index, text, lines),
	}
}

// chordsFor finds the nearest chord line above the lyric line at index.
// The backward search stops at the first intervening role-marker or
// plain-text line, so chords never cross a verse boundary; a chord line
// farther above than the configured maximum distance yields no chords.
func (b *Builder) chordsFor(index int, lyricText string, lines []classify.ClassifiedLine) []model.Chord {
	lyric := lines[index]

	var chordLine *classify.ClassifiedLine
	for j := index - 1; j >= 0; j-- {
		switch lines[j].Role {
		case classify.ChordLine:
			chordLine = &lines[j]
		case classify.RoleMarkerText, classify.PlainText:
			// Verse boundary reached without a chord line.
		default:
			continue
		}
		break
	}
	if chordLine == nil {
		return nil // NoChordLineFound: empty chords, not an error
	}

	if lyric.BBox.Top()-chordLine.BBox.Top() > b.cfg.MaxChordDistance {
		return nil
	}

	locations := b.locator.FindChords(chordLine.Text)
	if len(locations) == 0 {
		return nil
	}

	// The remainder's left edge: when the lyric line carries a role
	// marker, its text starts right of the line's box by the marker's
	// share of the width.
	lyricLeft, lyricWidth := remainderExtent(lyric, lyricText)

	found := make([]model.Chord, 0, len(locations))
	for _, loc := range locations {
		pixelX := chordLine.PixelAt(loc.Index)
		offset := b.mapper.MapOffset(position.Request{
			ChordPixelX:   pixelX,
			ChordIndex:    loc.Index,
			ChordLineText: chordLine.Text,
			LyricText:     lyricText,
			LyricLeft:     lyricLeft,
			LyricWidth:    lyricWidth,
			FontSize:      lyric.FontSize,
		})
		found = append(found, model.Chord{Name: loc.Token, Offset: offset, PixelX: pixelX})
	}

	// Offsets non-decreasing; equal offsets keep chord-line
	// left-to-right order (simultaneous chords).
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Offset < found[j].Offset
	})
	return found
}

// remainderExtent estimates the horizontal extent of the lyric text
// within its line box, proportionally skipping a leading role marker.
// Degenerate geometry resolves to the line's left edge and zero width.
func remainderExtent(line classify.ClassifiedLine, lyricText string) (left, width float64) {
	box := line.BBox
	if box.IsDegenerate() {
		return box.Left(), 0
	}

	total := len([]rune(line.Text))
	part := len([]rune(lyricText))
	if line.Role != classify.RoleMarkerText || part >= total || total == 0 {
		return box.Left(), box.Width
	}

	skipped := float64(total-part) / float64(total) * box.Width
	return box.Left() + skipped, box.Width - skipped
}
