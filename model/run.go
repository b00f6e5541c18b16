package model

// TextRun represents one positioned piece of text as read from a page.
// Runs are produced once by an extraction collaborator and never mutated;
// everything downstream is derived from them.
type TextRun struct {
	// Text is the run's decoded text content.
	Text string

	// BBox is the run's bounding box. Y is the top edge in a top-down
	// coordinate system; multi-page documents carry page-offset-adjusted
	// Y values so cross-page ordering stays monotonic.
	BBox BBox

	// FontName is the font family the run is set in.
	FontName string

	// FontSize is the run's font size in points.
	FontSize float64

	// Accent reports whether the run is set in the source document's
	// single highlight color (used for titles, chords, and annotations).
	Accent bool

	// Page is the zero-based page index the run was read from.
	Page int
}

// IsEmpty reports whether the run carries no visible text.
func (r TextRun) IsEmpty() bool {
	for _, c := range r.Text {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}
