package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/songbook/model"
)

// makeRun creates a test run for grouper tests.
func makeRun(txt string, x, y, width, height float64) model.TextRun {
	return model.TextRun{
		Text:     txt,
		BBox:     model.NewBBox(x, y, width, height),
		FontSize: 11,
	}
}

func TestGrouper_Empty(t *testing.T) {
	g := NewGrouper(3.0)

	if lines := g.Group(nil); lines != nil {
		t.Errorf("Group(nil) = %+v, want nil", lines)
	}
	if lines := g.Group([]model.TextRun{makeRun("   ", 0, 0, 10, 10)}); lines != nil {
		t.Errorf("whitespace-only runs should be dropped, got %+v", lines)
	}
}

func TestGrouper_MergesSameLine(t *testing.T) {
	g := NewGrouper(3.0)
	runs := []model.TextRun{
		makeRun("K. Slava", 50, 100, 40, 11),
		makeRun("Bogu", 95, 101.5, 25, 11), // within tolerance, significant gap
	}

	lines := g.Group(runs)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Text != "K. Slava Bogu" {
		t.Errorf("Text = %q, want %q", lines[0].Text, "K. Slava Bogu")
	}
	if lines[0].BBox.Left() != 50 || lines[0].BBox.Right() != 120 {
		t.Errorf("union bbox wrong: %+v", lines[0].BBox)
	}
}

func TestGrouper_SplitsDistantLines(t *testing.T) {
	g := NewGrouper(3.0)
	runs := []model.TextRun{
		makeRun("first", 50, 100, 30, 11),
		makeRun("second", 50, 114, 40, 11),
	}

	lines := g.Group(runs)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Text != "first" || lines[1].Text != "second" {
		t.Errorf("reading order wrong: %q, %q", lines[0].Text, lines[1].Text)
	}
}

func TestGrouper_ReadingOrder(t *testing.T) {
	g := NewGrouper(3.0)
	// Supplied out of order; must come back top-to-bottom.
	runs := []model.TextRun{
		makeRun("third", 50, 140, 30, 11),
		makeRun("first", 50, 100, 30, 11),
		makeRun("second", 50, 120, 30, 11),
	}

	lines := g.Group(runs)
	got := []string{lines[0].Text, lines[1].Text, lines[2].Text}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestMergeAdjacent_CombinesChordFragments(t *testing.T) {
	g := NewGrouper(3.0)
	runs := []model.TextRun{
		makeRun("G", 62, 100, 8, 10),
		makeRun("C7", 122, 100.4, 14, 10),
		makeRun("K. Slava Bogu na visini", 50, 112, 140, 11),
	}
	lines := g.Group(runs)

	isChord := func(l Line) bool { return l.Text == "G" || l.Text == "C7" || strings.HasPrefix(l.Text, "G ") }
	merged := MergeAdjacent(lines, isChord, 1.0, 6.0)

	if len(merged) != 2 {
		t.Fatalf("got %d lines, want 2", len(merged))
	}

	chordLine := merged[0]
	if !strings.HasPrefix(chordLine.Text, "G") || !strings.HasSuffix(chordLine.Text, "C7") {
		t.Fatalf("composite text = %q", chordLine.Text)
	}
	// Gap of 122-70 = 52px at 6px/column is 8 spaces between tokens.
	if chordLine.Text != "G        C7" {
		t.Errorf("composite text = %q, want %q", chordLine.Text, "G        C7")
	}
	if chordLine.BBox.Left() != 62 || chordLine.BBox.Right() != 136 {
		t.Errorf("composite bbox = %+v", chordLine.BBox)
	}

	if merged[1].Text != "K. Slava Bogu na visini" {
		t.Errorf("lyric line disturbed: %q", merged[1].Text)
	}
}

func TestMergeAdjacent_PreservesReadingOrder(t *testing.T) {
	g := NewGrouper(3.0)
	runs := []model.TextRun{
		makeRun("lyric one", 50, 100, 60, 11),
		makeRun("G", 50, 112, 8, 10),
		makeRun("lyric two", 50, 124, 60, 11),
	}
	lines := g.Group(runs)

	merged := MergeAdjacent(lines, func(l Line) bool { return l.Text == "G" }, 1.0, 6.0)
	if len(merged) != 3 {
		t.Fatalf("got %d lines, want 3", len(merged))
	}
	if merged[0].Text != "lyric one" || merged[1].Text != "G" || merged[2].Text != "lyric two" {
		t.Errorf("order = %q, %q, %q", merged[0].Text, merged[1].Text, merged[2].Text)
	}
}

func TestLine_PixelAt(t *testing.T) {
	line := Line{
		Text: "G        C7", // 11 runes
		BBox: model.NewBBox(62, 100, 74, 10),
	}

	if got := line.PixelAt(0); got != 62 {
		t.Errorf("PixelAt(0) = %v, want left edge", got)
	}
	// Index 9 (start of C7) proportionally: 62 + 9/11*74 ≈ 122.5.
	got := line.PixelAt(9)
	if got < 120 || got > 125 {
		t.Errorf("PixelAt(9) = %v, want ≈122.5", got)
	}
	// Past the end clamps to the right edge.
	if got := line.PixelAt(99); got != 136 {
		t.Errorf("PixelAt(99) = %v, want right edge 136", got)
	}
}

func TestLine_PixelAt_DegenerateGeometry(t *testing.T) {
	line := Line{Text: "G", BBox: model.NewBBox(10, 0, 0, 10)}
	if got := line.PixelAt(0); got != 10 {
		t.Errorf("degenerate box PixelAt = %v, want left edge", got)
	}
}
