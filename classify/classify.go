package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/songbook/chords"
	"github.com/tsawler/songbook/lang"
	"github.com/tsawler/songbook/layout"
)

// ClassifiedLine is one page line with its assigned role. Role-marker
// lines additionally carry the extracted marker token and the remainder
// text after it.
type ClassifiedLine struct {
	layout.Line

	// Role is the line's typographic role.
	Role Role

	// Marker is the role marker token for RoleMarkerText lines, e.g.
	// "K.". Empty for every other role.
	Marker string

	// Remainder is the trimmed text after the marker for RoleMarkerText
	// lines. It may be empty when the marker stands alone on its line.
	Remainder string
}

// Classifier assigns roles to page lines. Classification is total:
// every line receives exactly one role, defaulting to PlainText.
type Classifier struct {
	cfg     *lang.Config
	locator *chords.Locator
}

// NewClassifier creates a classifier for the given language, sharing
// the chord locator with the rest of the pipeline.
func NewClassifier(cfg *lang.Config, locator *chords.Locator) *Classifier {
	return &Classifier{cfg: cfg, locator: locator}
}

// bibleRefPattern matches a biblical-reference-shaped suffix such as
// "- Ps 64 (65)" or "- Mt 5,1-12" that titles commonly carry.
var bibleRefPattern = regexp.MustCompile(`\s*-\s*[A-Z][a-z]+\s*\d+[^)]*(\([^)]*\))?`)

// parenPattern matches parenthetical text.
var parenPattern = regexp.MustCompile(`\([^)]*\)`)

// Classify assigns a role to one line, first match wins. The order
// matters: a chord-heavy titled line must not classify as Title, and an
// accent-colored parenthetical must win over a title-shaped fragment.
// Zero-length lines are dropped by the grouper and never reach here.
func (c *Classifier) Classify(line layout.Line) ClassifiedLine {
	out := ClassifiedLine{Line: line}
	out.Text = norm.NFC.String(c.cfg.FixEncoding(line.Text))
	text := strings.TrimSpace(out.Text)

	switch {
	case c.locator.IsChordLine(text):
		out.Role = ChordLine

	case c.isTitle(text, line):
		out.Role = Title

	case line.Accent && c.cfg.HasCapoKeyword(text):
		out.Role = Kapodaster

	case c.isComment(text, line):
		out.Role = Comment

	default:
		if marker, ok := c.cfg.MarkerFor(text); ok {
			out.Role = RoleMarkerText
			out.Marker = marker
			out.Remainder = strings.TrimSpace(strings.TrimPrefix(text, marker))
		} else {
			out.Role = PlainText
		}
	}

	return out
}

// isTitle applies the title criteria: accent color, title-sized font,
// mostly-uppercase letters once parentheticals and reference suffixes
// are ignored, a minimum length, and no role marker or capo keyword.
func (c *Classifier) isTitle(text string, line layout.Line) bool {
	if !line.Accent || line.FontSize < c.cfg.TitleMinFontSize {
		return false
	}
	if len([]rune(text)) <= c.cfg.TitleMinLength {
		return false
	}
	if c.cfg.ContainsMarker(text) || c.cfg.HasCapoKeyword(text) {
		return false
	}
	// A fully parenthetical line is a comment no matter how
	// title-shaped its letters are.
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		return false
	}
	return c.uppercaseRatioOK(text)
}

// uppercaseRatioOK checks the uppercase share of the title's own words,
// with biblical references and parenthetical text stripped first.
func (c *Classifier) uppercaseRatioOK(text string) bool {
	stripped := bibleRefPattern.ReplaceAllString(text, "")
	stripped = strings.TrimSpace(parenPattern.ReplaceAllString(stripped, ""))

	if stripped == "" {
		// Nothing but references and parentheses; fall back to the
		// raw text being fully uppercase.
		return text == strings.ToUpper(text)
	}

	upper, lower := 0, 0
	for _, r := range stripped {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	total := upper + lower
	if total == 0 {
		return true // no letters at all
	}
	return float64(upper)/float64(total) >= c.cfg.TitleUppercaseRatio
}

// isComment recognizes accent-colored parentheticals and continuation
// lines of multi-line comments that wrap onto non-accented runs.
func (c *Classifier) isComment(text string, line layout.Line) bool {
	if line.Accent && strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		return true
	}
	// An unclosed parenthetical is still a comment opener.
	if line.Accent && strings.HasPrefix(text, "(") {
		return true
	}
	return c.cfg.IsCommentContinuation(text)
}
