// Package layout groups positioned text runs into page lines and merges
// fragmented chord lines into composite ones.
package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/songbook/model"
)

// Line represents a single line of text on a page, assembled from one or
// more runs sharing a Y position.
type Line struct {
	// BBox is the union of the member runs' boxes.
	BBox model.BBox

	// Runs are the member runs, sorted left to right.
	Runs []model.TextRun

	// Text is the assembled text content of the line.
	Text string

	// FontSize is the font size of the line's first run.
	FontSize float64

	// Accent reports whether the line's first run carries the accent
	// color flag.
	Accent bool

	// Page is the zero-based page index of the line's first run.
	Page int
}

// PixelAt returns the approximate page X coordinate of the rune at the
// given index, placing indices proportionally across the line's box.
// Composite chord lines are built with column-aligned spacing, so the
// proportional position tracks the originating fragment's geometry.
func (l Line) PixelAt(runeIndex int) float64 {
	n := len([]rune(l.Text))
	if n == 0 || l.BBox.IsDegenerate() {
		return l.BBox.Left()
	}
	if runeIndex < 0 {
		runeIndex = 0
	}
	if runeIndex > n {
		runeIndex = n
	}
	return l.BBox.Left() + float64(runeIndex)/float64(n)*l.BBox.Width
}

// Grouper merges runs sharing a page line by Y-coordinate tolerance.
type Grouper struct {
	// Tolerance is the maximum vertical distance in pixels between a
	// run and a line's running average Y for the run to join the line.
	Tolerance float64
}

// NewGrouper creates a grouper with the given Y tolerance.
func NewGrouper(tolerance float64) *Grouper {
	return &Grouper{Tolerance: tolerance}
}

// Group assembles runs into lines in reading order (top to bottom, then
// left to right). Empty runs are dropped here and never classified.
func (g *Grouper) Group(runs []model.TextRun) []Line {
	kept := make([]model.TextRun, 0, len(runs))
	for _, r := range runs {
		if !r.IsEmpty() {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	sorted := make([]model.TextRun, len(kept))
	copy(sorted, kept)
	sort.SliceStable(sorted, func(i, j int) bool {
		dy := sorted[i].BBox.Top() - sorted[j].BBox.Top()
		if math.Abs(dy) > g.Tolerance {
			return dy < 0
		}
		return false // same line, preserve stream order
	})

	var groups [][]model.TextRun
	var current []model.TextRun

	for _, run := range sorted {
		if len(current) == 0 {
			current = append(current, run)
			continue
		}
		if math.Abs(run.BBox.Top()-averageTop(current)) <= g.Tolerance {
			current = append(current, run)
		} else {
			groups = append(groups, current)
			current = []model.TextRun{run}
		}
	}
	groups = append(groups, current)

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].BBox.Left() < group[j].BBox.Left()
		})
		lines = append(lines, buildLine(group))
	}
	return lines
}

// averageTop returns the average top Y coordinate of a run group.
func averageTop(runs []model.TextRun) float64 {
	total := 0.0
	for _, r := range runs {
		total += r.BBox.Top()
	}
	return total / float64(len(runs))
}

// buildLine assembles one Line from left-to-right sorted runs.
func buildLine(runs []model.TextRun) Line {
	bbox := runs[0].BBox
	for _, r := range runs[1:] {
		bbox = bbox.Union(r.BBox)
	}

	var sb strings.Builder
	for i, run := range runs {
		if i > 0 {
			prev := runs[i-1]
			gap := run.BBox.Left() - prev.BBox.Right()
			// Add a space if there's a significant gap.
			if gap > run.BBox.Height*0.1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(run.Text)
	}

	return Line{
		BBox:     bbox,
		Runs:     runs,
		Text:     sb.String(),
		FontSize: runs[0].FontSize,
		Accent:   runs[0].Accent,
		Page:     runs[0].Page,
	}
}

// MergeAdjacent rebuilds the lines selected by keep as composite lines:
// vertically-adjacent selected lines (within tolerance) merge into one,
// and the composite text is reassembled from the member runs' geometry,
// filling horizontal gaps with spaces at approximately columnWidth
// pixels per column so a token's text column tracks its page position.
// Lines not selected pass through untouched; the result is re-sorted
// into reading order.
func MergeAdjacent(lines []Line, keep func(Line) bool, tolerance, columnWidth float64) []Line {
	var selected []Line
	var rest []Line
	for _, line := range lines {
		if keep(line) {
			selected = append(selected, line)
		} else {
			rest = append(rest, line)
		}
	}

	// Group selected lines by Y within tolerance.
	var merged []Line
	for len(selected) > 0 {
		group := []Line{selected[0]}
		y := selected[0].BBox.Top()
		remaining := selected[:0:0]
		for _, line := range selected[1:] {
			if math.Abs(line.BBox.Top()-y) < tolerance {
				group = append(group, line)
			} else {
				remaining = append(remaining, line)
			}
		}
		merged = append(merged, mergeGroup(group, columnWidth))
		selected = remaining
	}

	out := append(rest, merged...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BBox.Top() < out[j].BBox.Top()
	})
	return out
}

// mergeGroup combines same-Y fragments into one composite line whose
// text is rebuilt column-aligned from the member runs.
func mergeGroup(group []Line, columnWidth float64) Line {
	var runs []model.TextRun
	for _, line := range group {
		runs = append(runs, line.Runs...)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].BBox.Left() < runs[j].BBox.Left()
	})

	bbox := runs[0].BBox
	for _, r := range runs[1:] {
		bbox = bbox.Union(r.BBox)
	}

	var sb strings.Builder
	cursor := bbox.Left()
	for _, r := range runs {
		if pad := int((r.BBox.Left() - cursor) / columnWidth); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(strings.TrimSpace(r.Text))
		cursor = r.BBox.Right()
	}

	return Line{
		BBox:     bbox,
		Runs:     runs,
		Text:     sb.String(),
		FontSize: group[0].FontSize,
		Accent:   group[0].Accent,
		Page:     group[0].Page,
	}
}
