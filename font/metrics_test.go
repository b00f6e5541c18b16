package font

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMetrics_Width(t *testing.T) {
	m := Arial()

	// 'A' is 667/1000 em; at 10pt that is 6.67px.
	if got := m.Width('A', 10); !almostEqual(got, 6.67) {
		t.Errorf("Width('A', 10) = %v, want 6.67", got)
	}

	// Space at 11pt.
	if got := m.Width(' ', 11); !almostEqual(got, 0.278*11) {
		t.Errorf("Width(' ', 11) = %v", got)
	}
}

func TestMetrics_Width_FallbackNeverZero(t *testing.T) {
	m := Arial()

	// An unmapped glyph gets the documented average width.
	got := m.Width('§', 10)
	if !almostEqual(got, 5.56) {
		t.Errorf("fallback width = %v, want 5.56", got)
	}
	if got == 0 {
		t.Fatal("fallback width must never be zero")
	}
}

func TestMetrics_StringWidth(t *testing.T) {
	m := Arial()

	want := m.Width('G', 12) + m.Width('7', 12)
	if got := m.StringWidth("G7", 12); !almostEqual(got, want) {
		t.Errorf("StringWidth = %v, want %v", got, want)
	}

	if got := m.StringWidth("", 12); got != 0 {
		t.Errorf("StringWidth(\"\") = %v, want 0", got)
	}
}

func TestMetrics_PrefixWidth(t *testing.T) {
	m := Arial()

	s := "Slava"
	if got, want := m.PrefixWidth(s, 2, 11), m.Width('S', 11)+m.Width('l', 11); !almostEqual(got, want) {
		t.Errorf("PrefixWidth(2) = %v, want %v", got, want)
	}

	// n past the end is the whole string.
	if got, want := m.PrefixWidth(s, 99, 11), m.StringWidth(s, 11); !almostEqual(got, want) {
		t.Errorf("PrefixWidth(99) = %v, want %v", got, want)
	}
}

func TestMetrics_IndexAtOffset(t *testing.T) {
	m := Arial()
	s := "abc"
	size := 10.0

	wa := m.Width('a', size)
	wb := m.Width('b', size)

	tests := []struct {
		name   string
		offset float64
		want   int
	}{
		{"at left edge", 0, 0},
		{"negative", -5, 0},
		{"inside first glyph left half", wa * 0.4, 0},
		{"past first midpoint", wa*0.5 + 0.01, 1},
		{"inside second glyph left half", wa + wb*0.3, 1},
		{"past everything", 1000, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.IndexAtOffset(s, size, tc.offset); got != tc.want {
				t.Errorf("IndexAtOffset(%v) = %d, want %d", tc.offset, got, tc.want)
			}
		})
	}
}

func TestMetrics_IndexAtOffset_AlwaysInBounds(t *testing.T) {
	m := Arial()
	s := "K. Slava Bogu na visini"
	n := len([]rune(s))

	for offset := -20.0; offset < 300; offset += 1.7 {
		got := m.IndexAtOffset(s, 11, offset)
		if got < 0 || got > n {
			t.Fatalf("IndexAtOffset(%v) = %d out of [0,%d]", offset, got, n)
		}
	}
}

func TestMetrics_IndexAtOffset_Monotonic(t *testing.T) {
	m := Arial()
	s := "na visini"

	prev := 0
	for offset := 0.0; offset < 100; offset += 0.5 {
		got := m.IndexAtOffset(s, 11, offset)
		if got < prev {
			t.Fatalf("IndexAtOffset not monotonic: %d after %d at offset %v", got, prev, offset)
		}
		prev = got
	}
}
