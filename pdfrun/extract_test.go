package pdfrun

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func glyph(s string, x, y, w float64) pdf.Text {
	return pdf.Text{Font: "Arial", FontSize: 10, X: x, Y: y, W: w, S: s}
}

func TestAssembleRuns_JoinsGlyphsIntoWords(t *testing.T) {
	pieces := []pdf.Text{
		glyph("S", 50, 700, 6),
		glyph("l", 56, 700, 3),
		glyph("a", 59, 700, 5),
		glyph("v", 64, 700, 5),
		glyph("a", 69, 700, 5),
	}

	runs := assembleRuns(pieces, DefaultConfig(), 0, 842, 0)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Text != "Slava" {
		t.Errorf("text = %q, want %q", runs[0].Text, "Slava")
	}
	if runs[0].BBox.Left() != 50 || runs[0].BBox.Right() != 74 {
		t.Errorf("bbox = [%v, %v], want [50, 74]", runs[0].BBox.Left(), runs[0].BBox.Right())
	}
	if runs[0].FontName != "Arial" || runs[0].FontSize != 10 {
		t.Errorf("face = %s/%v, want Arial/10", runs[0].FontName, runs[0].FontSize)
	}
}

func TestAssembleRuns_WordGapBecomesSpace(t *testing.T) {
	pieces := []pdf.Text{
		glyph("na", 50, 700, 11),
		glyph("visini", 64, 700, 28), // 3pt gap, well inside one word-gap
	}

	runs := assembleRuns(pieces, DefaultConfig(), 0, 842, 0)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Text != "na visini" {
		t.Errorf("text = %q, want %q", runs[0].Text, "na visini")
	}
}

func TestAssembleRuns_WideGapSplitsChordColumns(t *testing.T) {
	pieces := []pdf.Text{
		glyph("G", 50, 700, 7),
		glyph("C7", 120, 700, 13), // far beyond WordGap * fontSize
	}

	runs := assembleRuns(pieces, DefaultConfig(), 0, 842, 0)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Text != "G" || runs[1].Text != "C7" {
		t.Errorf("texts = %q, %q", runs[0].Text, runs[1].Text)
	}
	if runs[1].BBox.Left() != 120 {
		t.Errorf("second run left = %v, want 120", runs[1].BBox.Left())
	}
}

func TestAssembleRuns_TopDownYAndPageOffset(t *testing.T) {
	pieces := []pdf.Text{glyph("tekst", 50, 700, 25)}

	runs := assembleRuns(pieces, DefaultConfig(), 1, 842, 842)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	// 842 - 700 - 10 (font size) + 842 (second page offset)
	want := 842 - 700 - 10 + 842.0
	if runs[0].BBox.Top() != want {
		t.Errorf("top = %v, want %v", runs[0].BBox.Top(), want)
	}
	if runs[0].Page != 1 {
		t.Errorf("page = %d, want 1", runs[0].Page)
	}
}

func TestAssembleRuns_FontChangeSplitsRun(t *testing.T) {
	pieces := []pdf.Text{
		glyph("K.", 50, 700, 10),
		{Font: "Arial-Bold", FontSize: 10, X: 61, Y: 700, W: 25, S: "Slava"},
	}

	runs := assembleRuns(pieces, DefaultConfig(), 0, 842, 0)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[1].FontName != "Arial-Bold" {
		t.Errorf("font = %q, want Arial-Bold", runs[1].FontName)
	}
}

func TestAssembleRuns_AccentDetector(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AccentDetector = func(name string, _ float64) bool { return name == "Arial-Accent" }

	pieces := []pdf.Text{
		{Font: "Arial-Accent", FontSize: 10, X: 50, Y: 700, W: 7, S: "G"},
		glyph("tekst", 50, 680, 25),
	}

	runs := assembleRuns(pieces, cfg, 0, 842, 0)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].Accent {
		t.Error("accented run not flagged")
	}
	if runs[1].Accent {
		t.Error("plain run flagged as accent")
	}
}

func TestAssembleRuns_DropsWhitespaceOnly(t *testing.T) {
	pieces := []pdf.Text{
		glyph("   ", 50, 700, 10),
		glyph("tekst", 50, 680, 25),
	}

	runs := assembleRuns(pieces, DefaultConfig(), 0, 842, 0)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Text != "tekst" {
		t.Errorf("text = %q", runs[0].Text)
	}
}
