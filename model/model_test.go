package model

import "testing"

func TestBBox_Edges(t *testing.T) {
	b := NewBBox(10, 20, 100, 12)

	if b.Left() != 10 || b.Right() != 110 {
		t.Errorf("horizontal edges wrong: left=%v right=%v", b.Left(), b.Right())
	}
	if b.Top() != 20 || b.Bottom() != 32 {
		t.Errorf("vertical edges wrong: top=%v bottom=%v", b.Top(), b.Bottom())
	}

	c := b.Center()
	if c.X != 60 || c.Y != 26 {
		t.Errorf("center wrong: %+v", c)
	}
}

func TestBBox_Union(t *testing.T) {
	a := NewBBox(10, 20, 30, 10)
	b := NewBBox(50, 18, 40, 14)

	u := a.Union(b)
	if u.Left() != 10 || u.Right() != 90 {
		t.Errorf("union horizontal wrong: %+v", u)
	}
	if u.Top() != 18 || u.Bottom() != 32 {
		t.Errorf("union vertical wrong: %+v", u)
	}
}

func TestBBox_IsDegenerate(t *testing.T) {
	if NewBBox(0, 0, 100, 10).IsDegenerate() {
		t.Error("normal box reported degenerate")
	}
	if !NewBBox(5, 5, 0, 10).IsDegenerate() {
		t.Error("zero-width box not reported degenerate")
	}
	if !NewBBox(5, 5, -3, 10).IsDegenerate() {
		t.Error("negative-width box not reported degenerate")
	}
}

func TestTextRun_IsEmpty(t *testing.T) {
	if (TextRun{Text: "K. Slava"}).IsEmpty() {
		t.Error("text run reported empty")
	}
	if !(TextRun{Text: "   \t "}).IsEmpty() {
		t.Error("whitespace run not reported empty")
	}
	if !(TextRun{}).IsEmpty() {
		t.Error("zero run not reported empty")
	}
}

func TestSong_Counters(t *testing.T) {
	s := Song{
		Verses: []Verse{
			{Role: "K.", Lines: []VerseLine{{Text: "one"}, {Text: "two"}}},
			{Role: "Z.", Lines: []VerseLine{{Text: "three", Chords: []Chord{{Name: "G", Offset: 0}}}}},
		},
	}

	if got := s.LineCount(); got != 3 {
		t.Errorf("LineCount = %d, want 3", got)
	}
	if !s.HasChords() {
		t.Error("HasChords = false, want true")
	}

	s.Verses[1].Lines[0].Chords = nil
	if s.HasChords() {
		t.Error("HasChords = true after removing chords")
	}
}
