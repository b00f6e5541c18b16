// Package chords locates chord-grammar tokens within a chord line.
package chords

import (
	"strings"

	"github.com/tsawler/songbook/lang"
)

// Location is one chord token found in a chord line, with its rune
// start index into the line text.
type Location struct {
	Token string
	Index int
}

// Locator recognizes chord tokens against a language's precomputed
// chord set.
type Locator struct {
	cfg *lang.Config
}

// NewLocator creates a locator for the given language configuration.
func NewLocator(cfg *lang.Config) *Locator {
	return &Locator{cfg: cfg}
}

// IsChord reports whether a whitespace-delimited token qualifies as a
// chord. A token qualifies if it exactly matches the valid-chord set,
// if it contains an internal space and some sub-part matches (two
// concurrent chords typeset with a gap), or if it splits at some
// internal index into two independently valid chords (adjacent chords
// typeset with no separator).
func (l *Locator) IsChord(token string) bool {
	if l.cfg.IsValidChord(token) {
		return true
	}

	if strings.ContainsRune(token, ' ') {
		for _, part := range strings.Fields(token) {
			if l.cfg.IsValidChord(part) {
				return true
			}
		}
		return false
	}

	left, right, ok := l.split(token)
	return ok && left != "" && right != ""
}

// split finds the leftmost internal index at which token divides into
// two independently valid chords.
func (l *Locator) split(token string) (left, right string, ok bool) {
	runes := []rune(token)
	for i := 1; i < len(runes); i++ {
		a, b := string(runes[:i]), string(runes[i:])
		if l.cfg.IsValidChord(a) && l.cfg.IsValidChord(b) {
			return a, b, true
		}
	}
	return "", "", false
}

// FindChords scans a composite chord line and returns its chord tokens
// in left-to-right order with their rune start indices. A token made of
// two adjacent chords yields both, at their respective indices.
func (l *Locator) FindChords(lineText string) []Location {
	var found []Location

	runes := []rune(lineText)
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' || runes[i] == '\t' {
			i++
			continue
		}

		start := i
		for i < len(runes) && runes[i] != ' ' && runes[i] != '\t' {
			i++
		}
		token := string(runes[start:i])

		switch {
		case l.cfg.IsValidChord(token):
			found = append(found, Location{Token: token, Index: start})
		default:
			if left, right, ok := l.split(token); ok {
				found = append(found, Location{Token: left, Index: start})
				found = append(found, Location{Token: right, Index: start + len([]rune(left))})
			}
		}
	}

	return found
}

// TokenRatio returns the fraction of whitespace tokens in text that
// qualify as chords; 0 for a blank line.
func (l *Locator) TokenRatio(text string) float64 {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0
	}

	n := 0
	for _, token := range tokens {
		if l.IsChord(token) {
			n++
		}
	}
	return float64(n) / float64(len(tokens))
}

// IsChordLine reports whether more than the configured share of the
// line's whitespace tokens match the chord grammar.
func (l *Locator) IsChordLine(text string) bool {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return false
	}
	return l.TokenRatio(text) > l.cfg.ChordTokenRatio
}
