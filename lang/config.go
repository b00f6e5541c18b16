// Package lang holds per-language configuration for songbook parsing:
// role markers, the chord alphabet, capo keywords, and the empirically
// tuned layout thresholds of the scanned corpus.
//
// Croatian and Slovenian configurations ship built in; a YAML file can
// overlay either (see [Load]).
package lang

import (
	"sort"
	"strings"
)

// Config describes one language's songbook conventions. Construct with
// [Croatian], [Slovenian], or [Load]; the chord set and marker ordering
// are precomputed once and must not be mutated afterwards.
type Config struct {
	// Code is the ISO language code, e.g. "hr".
	Code string `yaml:"code"`
	// Name is the human-readable language name.
	Name string `yaml:"name"`

	// RoleMarkers are the singer-attribution tokens a lyric line may
	// begin with, e.g. "K." (cantor) or "Z." (choir). Matching is
	// longest-first so a compound marker like "K.+Z." beats its "K."
	// prefix.
	RoleMarkers []string `yaml:"role_markers"`

	// ChordLetters are the base chord symbols; uppercase majors and
	// lowercase minors are both listed explicitly.
	ChordLetters []string `yaml:"chord_letters"`
	// ChordNumbers are numeric extensions appended to a base chord,
	// e.g. "7" in "G7".
	ChordNumbers []string `yaml:"chord_numbers"`
	// ChordSuffixes are quality suffixes appended to a base chord,
	// e.g. "sus4" in "Dsus4".
	ChordSuffixes []string `yaml:"chord_suffixes"`
	// ExtraChords are corpus-specific symbols valid on chord lines
	// without following the letter grammar, e.g. "*".
	ExtraChords []string `yaml:"extra_chords"`

	// CapoKeywords mark a kapodaster line, matched case-insensitively.
	CapoKeywords []string `yaml:"capo_keywords"`
	// CommentContinuations are prefixes that continue a multi-line
	// comment onto a following run.
	CommentContinuations []string `yaml:"comment_continuations"`

	// EncodingFixes maps scan-artifact characters to their intended
	// form; extraction adapters apply them before classification.
	EncodingFixes map[string]string `yaml:"encoding_fixes"`

	// Tuned thresholds below are empirical constants specific to the
	// scanned corpus; they are preserved values, not derived ones.

	// ChordTokenRatio is the fraction of a line's whitespace tokens
	// that must match the chord grammar for the line to classify as a
	// chord line (strictly greater than).
	ChordTokenRatio float64 `yaml:"chord_token_ratio"`
	// TitleMinFontSize is the minimum font size of a title line.
	TitleMinFontSize float64 `yaml:"title_min_font_size"`
	// TitleUppercaseRatio is the minimum uppercase-letter share of a
	// title line after stripping parentheticals and reference suffixes.
	TitleUppercaseRatio float64 `yaml:"title_uppercase_ratio"`
	// TitleMinLength is the minimum trimmed length of a title line
	// (strictly greater than).
	TitleMinLength int `yaml:"title_min_length"`
	// LineTolerance is the vertical distance in pixels within which
	// runs are grouped onto one page line.
	LineTolerance float64 `yaml:"line_tolerance"`
	// ChordMergeTolerance is the vertical distance in pixels within
	// which separate chord-only fragments merge into one composite
	// chord line.
	ChordMergeTolerance float64 `yaml:"chord_merge_tolerance"`
	// MaxChordDistance is the maximum vertical distance in pixels
	// between a chord line and the lyric line it applies to; beyond it
	// no chords attach.
	MaxChordDistance float64 `yaml:"max_chord_distance"`
	// ChordGapColumnWidth is the approximate pixel width of one text
	// column used when filling horizontal gaps between merged chord
	// fragments with spaces.
	ChordGapColumnWidth float64 `yaml:"chord_gap_column_width"`

	chordSet map[string]struct{}
	markers  []string // RoleMarkers sorted longest-first
}

// Croatian returns the built-in Croatian configuration.
func Croatian() *Config {
	c := &Config{
		Code: "hr",
		Name: "Croatian",
		// D. for Djeca.
		RoleMarkers: []string{"K.+Z.", "K.+P.", "K.", "Z.", "P.", "D."},
		ChordLetters: []string{
			"E", "F", "FIS", "G", "GIS", "A", "B", "H", "C", "CIS", "D", "DIS",
			"e", "f", "fis", "g", "gis", "a", "b", "h", "c", "cis", "d", "dis",
		},
		ChordNumbers:         []string{"7", "9", "11", "13"},
		ChordSuffixes:        []string{"sus2", "sus4", "maj7", "min7", "dim", "aug", "add9"},
		ExtraChords:          []string{"*", "d*"},
		CapoKeywords:         []string{"kapodaster", "kapo"},
		CommentContinuations: []string{"bez:"},
		EncodingFixes:        map[string]string{"è": "č", "È": "Č"},

		ChordTokenRatio:     0.6,
		TitleMinFontSize:    12.0,
		TitleUppercaseRatio: 0.70,
		TitleMinLength:      4,
		LineTolerance:       3.0,
		ChordMergeTolerance: 1.0,
		MaxChordDistance:    18.0,
		ChordGapColumnWidth: 6.0,
	}
	c.finalize()
	return c
}

// Slovenian returns the built-in Slovenian configuration.
func Slovenian() *Config {
	c := Croatian()
	c.Code = "sl"
	c.Name = "Slovenian"
	// O. for Otroci.
	c.RoleMarkers = []string{"K.+Z.", "P.+Z.", "K.", "Z.", "P.", "O."}
	c.finalize()
	return c
}

// finalize precomputes the immutable chord set and marker ordering from
// the configured alphabet. It must be called after any field changes.
func (c *Config) finalize() {
	set := make(map[string]struct{})
	for _, letter := range c.ChordLetters {
		set[letter] = struct{}{}
		for _, num := range c.ChordNumbers {
			set[letter+num] = struct{}{}
		}
		for _, suffix := range c.ChordSuffixes {
			set[letter+suffix] = struct{}{}
		}
	}
	for _, extra := range c.ExtraChords {
		set[extra] = struct{}{}
	}
	c.chordSet = set

	c.markers = make([]string, len(c.RoleMarkers))
	copy(c.markers, c.RoleMarkers)
	sort.SliceStable(c.markers, func(i, j int) bool {
		return len(c.markers[i]) > len(c.markers[j])
	})
}

// ChordSet returns the precomputed set of valid chord symbols. The
// returned map is shared and must be treated as read-only.
func (c *Config) ChordSet() map[string]struct{} {
	return c.chordSet
}

// IsValidChord reports whether token exactly matches the chord alphabet.
func (c *Config) IsValidChord(token string) bool {
	_, ok := c.chordSet[token]
	return ok
}

// MarkerFor returns the role marker text begins with, trying longer
// markers first, and reports whether one matched.
func (c *Config) MarkerFor(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	for _, marker := range c.markers {
		if strings.HasPrefix(trimmed, marker) {
			return marker, true
		}
	}
	return "", false
}

// ContainsMarker reports whether text contains any role marker token.
func (c *Config) ContainsMarker(text string) bool {
	for _, marker := range c.markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// HasCapoKeyword reports whether text contains a capo keyword,
// case-insensitively.
func (c *Config) HasCapoKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.CapoKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsCommentContinuation reports whether text begins with a configured
// comment continuation keyword.
func (c *Config) IsCommentContinuation(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, kw := range c.CommentContinuations {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	return false
}

// FixEncoding applies the configured scan-artifact character fixes.
func (c *Config) FixEncoding(text string) string {
	if len(c.EncodingFixes) == 0 {
		return text
	}
	for wrong, right := range c.EncodingFixes {
		text = strings.ReplaceAll(text, wrong, right)
	}
	return text
}
