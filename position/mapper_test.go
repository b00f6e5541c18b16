package position

import (
	"testing"

	"github.com/tsawler/songbook/font"
)

func TestPixelMapper_SpecScenario(t *testing.T) {
	// Chord line "   G        C7" with tokens at columns 3 and 11,
	// directly above "K. Slava Bogu na visini", same 11pt size,
	// aligned left edges.
	m := NewPixelMapper(font.Arial())
	metrics := font.Arial()

	lyric := "K. Slava Bogu na visini"
	left := 50.0
	width := metrics.StringWidth(lyric, 11)

	// Pixel positions of columns 3 and 11 in the chord line, measured
	// in the same font.
	chordLine := "   G        C7"
	gX := left + metrics.PrefixWidth(chordLine, 3, 11)
	c7X := left + metrics.PrefixWidth(chordLine, 11, 11)

	gOffset := m.MapOffset(Request{
		ChordPixelX: gX, LyricText: lyric, LyricLeft: left, LyricWidth: width, FontSize: 11,
	})
	c7Offset := m.MapOffset(Request{
		ChordPixelX: c7X, LyricText: lyric, LyricLeft: left, LyricWidth: width, FontSize: 11,
	})

	n := len([]rune(lyric))
	if gOffset < 0 || gOffset > n || c7Offset < 0 || c7Offset > n {
		t.Fatalf("offsets out of bounds: g=%d c7=%d len=%d", gOffset, c7Offset, n)
	}
	if gOffset >= c7Offset {
		t.Errorf("g offset %d not before c7 offset %d", gOffset, c7Offset)
	}
	// "G" floats over the start of "Slava": its offset must precede
	// the word's end, and "C7" must land further into the line.
	if gOffset > 5 {
		t.Errorf("g offset = %d, want near column 3", gOffset)
	}
	if c7Offset < 8 {
		t.Errorf("c7 offset = %d, want near column 11", c7Offset)
	}
}

func TestPixelMapper_ClampsIntoLyricRange(t *testing.T) {
	m := NewPixelMapper(font.Arial())
	lyric := "na visini"
	n := len([]rune(lyric))

	// Far left of the lyric run.
	got := m.MapOffset(Request{ChordPixelX: -500, LyricText: lyric, LyricLeft: 50, LyricWidth: 60, FontSize: 11})
	if got != 0 {
		t.Errorf("left overflow offset = %d, want 0", got)
	}

	// Far right: placed at line end, never dropped.
	got = m.MapOffset(Request{ChordPixelX: 9999, LyricText: lyric, LyricLeft: 50, LyricWidth: 60, FontSize: 11})
	if got != n {
		t.Errorf("right overflow offset = %d, want %d", got, n)
	}
}

func TestPixelMapper_DegenerateGeometry(t *testing.T) {
	m := NewPixelMapper(font.Arial())

	got := m.MapOffset(Request{ChordPixelX: 120, LyricText: "text", LyricLeft: 50, LyricWidth: 0, FontSize: 11})
	if got != 0 {
		t.Errorf("degenerate geometry offset = %d, want 0", got)
	}
}

func TestPixelMapper_Pure(t *testing.T) {
	m := NewPixelMapper(font.Arial())
	req := Request{ChordPixelX: 87.3, LyricText: "K. Slava Bogu", LyricLeft: 50, LyricWidth: 80, FontSize: 11}

	first := m.MapOffset(req)
	for i := 0; i < 10; i++ {
		if got := m.MapOffset(req); got != first {
			t.Fatalf("mapper not pure: %d then %d", first, got)
		}
	}
}

func TestProportionalMapper(t *testing.T) {
	m := NewProportionalMapper()

	tests := []struct {
		name      string
		chordLine string
		index     int
		lyric     string
		want      int
	}{
		{"start", "G     C7", 0, "0123456789", 0},
		{"middle", "G    C7  ", 5, "0123456789", 7}, // effective len 7, 5/7*10 ≈ 7
		{"rounds", "G  a", 2, "01234567", 4},
		{"empty chord line", "   ", 2, "0123", 0},
		{"clamps to length", "GC", 2, "x", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := m.MapOffset(Request{
				ChordIndex:    tc.index,
				ChordLineText: tc.chordLine,
				LyricText:     tc.lyric,
			})
			if got != tc.want {
				t.Errorf("MapOffset = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestProportionalMapper_AlwaysInBounds(t *testing.T) {
	m := NewProportionalMapper()
	lyric := "kratka"
	n := len([]rune(lyric))

	for idx := 0; idx < 40; idx++ {
		got := m.MapOffset(Request{ChordIndex: idx, ChordLineText: "G     C7   a", LyricText: lyric})
		if got < 0 || got > n {
			t.Fatalf("offset %d out of [0,%d] at index %d", got, n, idx)
		}
	}
}

func TestSelect(t *testing.T) {
	if _, ok := Select(true, font.Arial()).(*PixelMapper); !ok {
		t.Error("Select(true) should pick the pixel strategy")
	}
	if _, ok := Select(false, nil).(*ProportionalMapper); !ok {
		t.Error("Select(false) should pick the proportional fallback")
	}
}
