// Package font provides glyph advance-width metrics for the songbook
// source typeface.
//
// The source documents are typeset in a single proportional-width family
// (Arial), so chord symbols floating above a lyric line land at pixel
// positions that depend on every glyph's advance width. This package
// holds the fixed per-mille (1000 units per em) advance-width table for
// that family and exposes it at any font size.
//
// # Metrics
//
// A [Metrics] value answers three questions:
//
//	m := font.Arial()
//	w := m.Width('S', 11)           // one glyph's advance in pixels
//	total := m.StringWidth(s, 11)   // cumulative width of a string
//	idx := m.IndexAtOffset(s, 11, x) // inverse: pixel offset -> char index
//
// IndexAtOffset is the single shared inverse-lookup primitive used by
// the position mapper; character selection uses the advance interval's
// midpoint, so an offset landing in the left half of a glyph maps to
// that glyph's index.
//
// Glyphs missing from the table use an average-width fallback, never
// zero, so cumulative widths stay monotonic for any input text.
package font
