// Package songbook converts positioned text runs read from scanned
// songbook pages into structured songs: a title, an optional kapodaster
// note, and role-attributed verses whose lyric lines carry chords at
// derived character offsets.
//
// Basic usage:
//
//	song := songbook.New().Parse(runs)
//
// With options:
//
//	song := songbook.New().
//	    Language(lang.Slovenian()).
//	    FallbackTitle("2-03-blag").
//	    Parse(runs)
//
// Parsing is a pure fold from a TextRun sequence to one Song: no I/O,
// no mutable state across documents, and no internal failure mode —
// irregular input degrades to partial or empty optional fields instead
// of aborting. Reading PDFs or hOCR into runs is the job of the pdfrun
// and hocrrun packages.
package songbook

import (
	"strings"

	"github.com/tsawler/songbook/chords"
	"github.com/tsawler/songbook/classify"
	"github.com/tsawler/songbook/font"
	"github.com/tsawler/songbook/lang"
	"github.com/tsawler/songbook/layout"
	"github.com/tsawler/songbook/model"
	"github.com/tsawler/songbook/position"
	"github.com/tsawler/songbook/verse"
)

// Parser assembles songs from text runs. Configure with the fluent
// methods, then call Parse; one Parser may be reused across documents
// and is safe for concurrent use once configured.
type Parser struct {
	options Options
}

// New creates a Parser with default options (Croatian language, pixel
// position mapping, empty fallback title).
func New() *Parser {
	return &Parser{options: defaultOptions()}
}

// Language sets the language configuration.
func (p *Parser) Language(cfg *lang.Config) *Parser {
	p.options.language = cfg
	return p
}

// FallbackTitle sets the title used when no title line qualifies,
// typically the source file's base name.
func (p *Parser) FallbackTitle(title string) *Parser {
	p.options.fallbackTitle = title
	return p
}

// Proportional switches position mapping to the proportional fallback
// strategy, for sources where only column-approximate text extraction
// is available instead of true bounding boxes.
func (p *Parser) Proportional() *Parser {
	p.options.proportional = true
	return p
}

// Parse folds an ordered run sequence into one Song.
func (p *Parser) Parse(runs []model.TextRun) model.Song {
	opts := p.options
	cfg := opts.language

	locator := chords.NewLocator(cfg)
	classifier := classify.NewClassifier(cfg, locator)
	grouper := layout.NewGrouper(cfg.LineTolerance)
	mapper := position.Select(!opts.proportional, font.Arial())

	// Group runs into lines, then rebuild fragmented chord lines as
	// column-aligned composites before final classification.
	lines := grouper.Group(runs)
	lines = layout.MergeAdjacent(lines, func(l layout.Line) bool {
		return locator.IsChordLine(l.Text)
	}, cfg.ChordMergeTolerance, cfg.ChordGapColumnWidth)

	classified := make([]classify.ClassifiedLine, 0, len(lines))
	for _, line := range lines {
		classified = append(classified, classifier.Classify(line))
	}

	builder := verse.NewBuilder(cfg, locator, mapper)

	return model.Song{
		Title:      firstTitle(classified, opts.fallbackTitle),
		Kapodaster: firstKapodaster(classified),
		Verses:     builder.Build(classified),
		Comments:   collectComments(classified, cfg),
	}
}

// firstTitle returns the first qualifying title line, or the fallback.
func firstTitle(lines []classify.ClassifiedLine, fallback string) string {
	for _, line := range lines {
		if line.Role == classify.Title {
			return strings.TrimSpace(line.Text)
		}
	}
	return fallback
}

// firstKapodaster returns the first qualifying kapodaster line, or "".
func firstKapodaster(lines []classify.ClassifiedLine) string {
	for _, line := range lines {
		if line.Role == classify.Kapodaster {
			return strings.TrimSpace(line.Text)
		}
	}
	return ""
}

// collectComments gathers comment lines in document order. A comment
// lacking its closing delimiter continues across subsequent comment or
// continuation-keyword lines until one closes it.
func collectComments(lines []classify.ClassifiedLine, cfg *lang.Config) []string {
	var comments []string
	open := ""

	for _, line := range lines {
		if line.Role != classify.Comment {
			continue
		}
		text := strings.TrimSpace(line.Text)

		switch {
		case open != "":
			open += "\n" + text
			if strings.HasSuffix(text, ")") {
				comments = append(comments, open)
				open = ""
			}
		case strings.HasPrefix(text, "(") && !strings.HasSuffix(text, ")"):
			open = text
		default:
			comments = append(comments, text)
		}
	}

	// An unclosed trailing comment is kept rather than dropped.
	if open != "" {
		comments = append(comments, open)
	}
	return comments
}
