package model

// Chord is one chord annotation on a lyric line.
type Chord struct {
	// Name is the chord symbol, e.g. "G" or "C7".
	Name string

	// Offset is the character (rune) offset into the owning lyric line.
	// It is always in [0, len(text)]; an offset equal to the text length
	// places the chord at line end. Chords sharing an offset sound
	// simultaneously and keep their chord-line left-to-right order.
	Offset int

	// PixelX is the originating pixel X coordinate of the chord symbol
	// on the page. Diagnostic only; Offset is derived from it.
	PixelX float64
}

// VerseLine is one lyric line with its chord annotations.
type VerseLine struct {
	// Text is the lyric text, role marker stripped.
	Text string

	// Chords are the line's chord annotations, sorted by Offset
	// (non-decreasing).
	Chords []Chord
}

// Verse is a run of lyric lines attributed to one singer role.
type Verse struct {
	// Role is the marker token attributing the verse to a singer or
	// group, e.g. "K." or "Z.". Empty means unattributed.
	Role string

	// Lines are the verse's lyric lines in page reading order.
	Lines []VerseLine
}

// Song is one fully parsed song.
type Song struct {
	// Title is the song title, from the first qualifying title line or
	// the caller-supplied fallback.
	Title string

	// Kapodaster is the capo-position annotation near the song's top,
	// empty if the page carries none.
	Kapodaster string

	// Verses in page reading order. A buffered unattributed verse, if
	// any, comes first.
	Verses []Verse

	// Comments are free-standing comment strings in document order,
	// multi-line comments already joined.
	Comments []string
}

// LineCount returns the total number of lyric lines across all verses.
func (s Song) LineCount() int {
	n := 0
	for _, v := range s.Verses {
		n += len(v.Lines)
	}
	return n
}

// HasChords reports whether any line in the song carries a chord.
func (s Song) HasChords() bool {
	for _, v := range s.Verses {
		for _, l := range v.Lines {
			if len(l.Chords) > 0 {
				return true
			}
		}
	}
	return false
}
