// Package pdfrun reads a songbook PDF into the ordered TextRun sequence
// the parser consumes. It is the I/O boundary collaborator: an
// unreadable file is the only fatal condition in the whole pipeline.
package pdfrun

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/songbook/model"
)

// Config holds extraction options.
type Config struct {
	// AccentDetector reports whether a glyph with the given font name
	// and size is set in the source's highlight color. The underlying
	// PDF library does not expose fill color, so detection goes by the
	// typographic cues the corpus uses for accented runs; nil leaves
	// every run un-accented (chord lines still classify by grammar).
	AccentDetector func(fontName string, fontSize float64) bool

	// YTolerance is the maximum baseline difference in points for two
	// glyphs to share a line during run assembly.
	YTolerance float64

	// WordGap is the maximum horizontal gap, as a multiple of font
	// size, bridged with a single space inside one run. Wider gaps
	// split the text into separate runs so chord-column geometry
	// survives.
	WordGap float64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		AccentDetector: nil,
		YTolerance:     2.0,
		WordGap:        1.0,
	}
}

// defaultPageHeight is the A4 height in points, used when a page
// carries no usable MediaBox.
const defaultPageHeight = 842.0

// Extract reads every page of the PDF at path into TextRuns in reading
// order. Y coordinates are converted to a top-down axis and adjusted by
// a per-page offset so cross-page ordering stays monotonic.
func Extract(path string, cfg Config) ([]model.TextRun, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	var runs []model.TextRun
	offset := 0.0

	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		height := pageHeight(page)
		content := page.Content()
		runs = append(runs, assembleRuns(content.Text, cfg, pageIndex-1, height, offset)...)
		offset += height
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].BBox.Top() != runs[j].BBox.Top() {
			return runs[i].BBox.Top() < runs[j].BBox.Top()
		}
		return runs[i].BBox.Left() < runs[j].BBox.Left()
	})
	return runs, nil
}

// pageHeight reads the page's MediaBox height, defaulting to A4.
func pageHeight(page pdf.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.Kind() != pdf.Array || box.Len() < 4 {
		return defaultPageHeight
	}
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if h <= 0 {
		return defaultPageHeight
	}
	return h
}

// assembleRuns merges per-glyph text pieces into word-level runs. The
// library emits one Text per show-text operation, frequently a single
// glyph, so adjacent pieces sharing a baseline, font, and size are
// joined; gaps up to WordGap font sizes become a space, wider gaps
// start a new run (typically the next chord column).
func assembleRuns(pieces []pdf.Text, cfg Config, page int, pageHeight, yOffset float64) []model.TextRun {
	if len(pieces) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(pieces))
	copy(sorted, pieces)
	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y-sorted[j].Y) > cfg.YTolerance {
			return sorted[i].Y > sorted[j].Y // higher baseline first (top of page)
		}
		return sorted[i].X < sorted[j].X
	})

	var runs []model.TextRun
	var sb strings.Builder
	var first, last pdf.Text
	open := false

	flush := func() {
		if !open {
			return
		}
		text := sb.String()
		sb.Reset()
		open = false
		if strings.TrimSpace(text) == "" {
			return
		}
		top := pageHeight - first.Y - first.FontSize + yOffset
		runs = append(runs, model.TextRun{
			Text:     text,
			BBox:     model.NewBBox(first.X, top, last.X+last.W-first.X, first.FontSize),
			FontName: first.Font,
			FontSize: first.FontSize,
			Accent:   cfg.AccentDetector != nil && cfg.AccentDetector(first.Font, first.FontSize),
			Page:     page,
		})
	}

	for _, piece := range sorted {
		if !open {
			first, last = piece, piece
			sb.WriteString(piece.S)
			open = true
			continue
		}

		sameLine := math.Abs(piece.Y-last.Y) <= cfg.YTolerance
		sameFace := piece.Font == last.Font && piece.FontSize == last.FontSize
		gap := piece.X - (last.X + last.W)

		switch {
		case !sameLine || !sameFace || gap > cfg.WordGap*piece.FontSize:
			flush()
			first, last = piece, piece
			sb.WriteString(piece.S)
			open = true
		case gap > 0.2*piece.FontSize:
			sb.WriteString(" ")
			sb.WriteString(piece.S)
			last = piece
		default:
			sb.WriteString(piece.S)
			last = piece
		}
	}
	flush()

	return runs
}
