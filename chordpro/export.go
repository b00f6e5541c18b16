// Package chordpro serializes a parsed song into the line-oriented
// ChordPro-style format used by the songbook toolchain: a title
// directive, an optional kapodaster comment directive, per verse its
// role token, a tab, and the lyric lines with chords inlined as
// [ChordName] immediately before the character they apply to.
package chordpro

import (
	"strings"

	"github.com/tsawler/songbook/model"
)

// Export renders a song. The output is lossless with respect to the
// Song model: every verse, line, chord offset, and comment survives.
func Export(song model.Song) string {
	var sb strings.Builder

	if song.Title != "" {
		sb.WriteString("{title: " + song.Title + "}\n\n")
	}
	if song.Kapodaster != "" {
		sb.WriteString("{comment: " + song.Kapodaster + "}\n\n")
	}

	for _, v := range song.Verses {
		for i, line := range v.Lines {
			rendered := InlineChords(line)
			switch {
			case i == 0 && v.Role != "":
				sb.WriteString(v.Role + "\t" + rendered)
			case v.Role != "":
				sb.WriteString("\t" + rendered)
			default:
				sb.WriteString(rendered)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	for _, comment := range song.Comments {
		sb.WriteString("{comment: " + comment + "}\n")
	}

	return sb.String()
}

// InlineChords renders one lyric line with its chords inlined as
// [Name] immediately before the character at each chord's offset.
// Chords at or past the end of the text append after it; a chordless
// line renders as its bare text.
func InlineChords(line model.VerseLine) string {
	if len(line.Chords) == 0 {
		return line.Text
	}

	runes := []rune(line.Text)
	if strings.TrimSpace(line.Text) == "" {
		// No lyric to anchor to; emit the chords back to back.
		names := make([]string, len(line.Chords))
		for i, ch := range line.Chords {
			names[i] = ch.Name
		}
		return "[" + strings.Join(names, "][") + "]"
	}

	var sb strings.Builder
	pos := 0
	for _, ch := range line.Chords {
		offset := ch.Offset
		if offset > len(runes) {
			offset = len(runes)
		}
		if offset > pos {
			sb.WriteString(string(runes[pos:offset]))
			pos = offset
		}
		sb.WriteString("[" + ch.Name + "]")
	}
	if pos < len(runes) {
		sb.WriteString(string(runes[pos:]))
	}
	return sb.String()
}
