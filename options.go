package songbook

import "github.com/tsawler/songbook/lang"

// Options holds configuration for song parsing.
type Options struct {
	// language selects role markers, chord alphabet, and tuned layout
	// thresholds.
	language *lang.Config

	// fallbackTitle is used when no title line qualifies.
	fallbackTitle string

	// proportional selects the column-proportional position-mapping
	// fallback instead of direct pixel mapping.
	proportional bool
}

// defaultOptions returns the default parsing options.
func defaultOptions() Options {
	return Options{
		language:      lang.Croatian(),
		fallbackTitle: "",
		proportional:  false,
	}
}
