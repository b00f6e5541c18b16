package font

// Metrics provides advance-width lookups for one typeface at any size.
// The zero value is not usable; construct with [Arial].
type Metrics struct {
	widths  map[rune]int
	average int
}

// Arial returns the metrics table for the Arial family used by the
// source songbooks.
func Arial() *Metrics {
	return &Metrics{
		widths:  arialWidths,
		average: averageWidth,
	}
}

// Width returns the advance width of one glyph in pixels at the given
// font size. Missing glyphs use the average-width fallback.
func (m *Metrics) Width(r rune, fontSize float64) float64 {
	units, ok := m.widths[r]
	if !ok {
		units = m.average
	}
	return float64(units) / 1000.0 * fontSize
}

// StringWidth returns the cumulative advance width of s in pixels at the
// given font size.
func (m *Metrics) StringWidth(s string, fontSize float64) float64 {
	total := 0.0
	for _, r := range s {
		total += m.Width(r, fontSize)
	}
	return total
}

// PrefixWidth returns the cumulative advance width of the first n runes
// of s, in pixels at the given font size.
func (m *Metrics) PrefixWidth(s string, n int, fontSize float64) float64 {
	total := 0.0
	for i, r := range []rune(s) {
		if i >= n {
			break
		}
		total += m.Width(r, fontSize)
	}
	return total
}

// IndexAtOffset returns the rune index in s whose advance interval the
// cumulative pixel offset falls into, using the interval midpoint: the
// first index whose midpoint reaches or exceeds offset wins. An offset
// at or before the left edge returns 0; an offset past the last glyph
// returns the rune length of s, placing a chord at line end rather than
// dropping it.
func (m *Metrics) IndexAtOffset(s string, fontSize, offset float64) int {
	if offset <= 0 {
		return 0
	}

	current := 0.0
	index := 0
	for i, r := range []rune(s) {
		w := m.Width(r, fontSize)
		if offset <= current+w/2 {
			return i
		}
		current += w
		index = i + 1
	}
	return index
}
