// Package position converts a chord's pixel X coordinate into a
// character offset within its associated lyric line.
//
// Two strategies exist behind one [Mapper] interface: [PixelMapper]
// walks per-glyph advance widths when true bounding boxes are available,
// and [ProportionalMapper] falls back to column-proportional mapping
// when only column-approximate text extraction is available. Both clamp
// into the receiving line's valid range; an offset equal to the text
// length places the chord at line end, never drops it.
package position

import (
	"math"

	"github.com/tsawler/songbook/font"
)

// Request carries everything either strategy may need to map one chord.
type Request struct {
	// ChordPixelX is the chord symbol's page X coordinate.
	ChordPixelX float64
	// ChordIndex is the chord token's rune start index in the chord
	// line text (proportional strategy input).
	ChordIndex int
	// ChordLineText is the composite chord line's text.
	ChordLineText string

	// LyricText is the receiving lyric line's text.
	LyricText string
	// LyricLeft and LyricWidth describe the lyric run's horizontal
	// extent on the page.
	LyricLeft, LyricWidth float64
	// FontSize is the lyric line's font size in points.
	FontSize float64
}

// Mapper maps one chord onto a character offset in its lyric line.
// Implementations are pure: identical requests yield identical offsets.
type Mapper interface {
	MapOffset(req Request) int
}

// PixelMapper performs direct pixel mapping using glyph advance widths.
// It clamps the chord X into the lyric run's horizontal extent, then
// walks the lyric text accumulating per-character advances from the left
// edge until a character's advance-interval midpoint first reaches the
// clamped X.
type PixelMapper struct {
	Metrics *font.Metrics
}

// NewPixelMapper creates a pixel mapper over the given metrics table.
func NewPixelMapper(m *font.Metrics) *PixelMapper {
	return &PixelMapper{Metrics: m}
}

// MapOffset implements Mapper. Degenerate lyric geometry resolves to
// offset 0; it never aborts the document.
func (p *PixelMapper) MapOffset(req Request) int {
	if req.LyricWidth <= 0 {
		return 0
	}

	clamped := math.Max(req.LyricLeft, math.Min(req.ChordPixelX, req.LyricLeft+req.LyricWidth))
	return p.Metrics.IndexAtOffset(req.LyricText, req.FontSize, clamped-req.LyricLeft)
}

// ProportionalMapper maps a chord's text column proportionally onto the
// lyric text, for sources where only column-approximate extraction is
// available. The effective chord line length excludes trailing spaces.
type ProportionalMapper struct{}

// NewProportionalMapper creates a proportional fallback mapper.
func NewProportionalMapper() *ProportionalMapper {
	return &ProportionalMapper{}
}

// MapOffset implements Mapper.
func (p *ProportionalMapper) MapOffset(req Request) int {
	lyric := []rune(req.LyricText)

	effective := effectiveLength(req.ChordLineText)
	if effective == 0 {
		return 0
	}

	offset := int(math.Round(float64(req.ChordIndex) / float64(effective) * float64(len(lyric))))
	if offset < 0 {
		offset = 0
	}
	if offset > len(lyric) {
		offset = len(lyric)
	}
	return offset
}

// effectiveLength is the rune length of the line with trailing
// whitespace trimmed.
func effectiveLength(s string) int {
	runes := []rune(s)
	end := len(runes)
	for end > 0 && (runes[end-1] == ' ' || runes[end-1] == '\t') {
		end--
	}
	return end
}

// Select returns the strategy for the available geometry: direct pixel
// mapping when true bounding boxes exist, the proportional fallback
// otherwise.
func Select(hasGeometry bool, m *font.Metrics) Mapper {
	if hasGeometry {
		return NewPixelMapper(m)
	}
	return NewProportionalMapper()
}
