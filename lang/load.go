package lang

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML overlay shape. Every field is optional; unset
// fields keep the base configuration's value. Pointers distinguish
// "absent" from a deliberate zero.
type fileConfig struct {
	Base string `yaml:"base"` // "hr" or "sl", default "hr"

	Code                 string            `yaml:"code"`
	Name                 string            `yaml:"name"`
	RoleMarkers          []string          `yaml:"role_markers"`
	ChordLetters         []string          `yaml:"chord_letters"`
	ChordNumbers         []string          `yaml:"chord_numbers"`
	ChordSuffixes        []string          `yaml:"chord_suffixes"`
	ExtraChords          []string          `yaml:"extra_chords"`
	CapoKeywords         []string          `yaml:"capo_keywords"`
	CommentContinuations []string          `yaml:"comment_continuations"`
	EncodingFixes        map[string]string `yaml:"encoding_fixes"`

	ChordTokenRatio     *float64 `yaml:"chord_token_ratio"`
	TitleMinFontSize    *float64 `yaml:"title_min_font_size"`
	TitleUppercaseRatio *float64 `yaml:"title_uppercase_ratio"`
	TitleMinLength      *int     `yaml:"title_min_length"`
	LineTolerance       *float64 `yaml:"line_tolerance"`
	ChordMergeTolerance *float64 `yaml:"chord_merge_tolerance"`
	MaxChordDistance    *float64 `yaml:"max_chord_distance"`
	ChordGapColumnWidth *float64 `yaml:"chord_gap_column_width"`
}

// ForCode returns the built-in configuration for a language code.
func ForCode(code string) (*Config, error) {
	switch code {
	case "", "hr":
		return Croatian(), nil
	case "sl":
		return Slovenian(), nil
	default:
		return nil, fmt.Errorf("unsupported language code %q", code)
	}
}

// Load reads a YAML configuration file and overlays it onto the built-in
// base it names (default Croatian). Only fields present in the file
// override the base.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse language config: %w", err)
	}

	base, err := ForCode(fc.Base)
	if err != nil {
		return nil, err
	}

	if fc.Code != "" {
		base.Code = fc.Code
	}
	if fc.Name != "" {
		base.Name = fc.Name
	}
	if fc.RoleMarkers != nil {
		base.RoleMarkers = fc.RoleMarkers
	}
	if fc.ChordLetters != nil {
		base.ChordLetters = fc.ChordLetters
	}
	if fc.ChordNumbers != nil {
		base.ChordNumbers = fc.ChordNumbers
	}
	if fc.ChordSuffixes != nil {
		base.ChordSuffixes = fc.ChordSuffixes
	}
	if fc.ExtraChords != nil {
		base.ExtraChords = fc.ExtraChords
	}
	if fc.CapoKeywords != nil {
		base.CapoKeywords = fc.CapoKeywords
	}
	if fc.CommentContinuations != nil {
		base.CommentContinuations = fc.CommentContinuations
	}
	if fc.EncodingFixes != nil {
		base.EncodingFixes = fc.EncodingFixes
	}

	if fc.ChordTokenRatio != nil {
		base.ChordTokenRatio = *fc.ChordTokenRatio
	}
	if fc.TitleMinFontSize != nil {
		base.TitleMinFontSize = *fc.TitleMinFontSize
	}
	if fc.TitleUppercaseRatio != nil {
		base.TitleUppercaseRatio = *fc.TitleUppercaseRatio
	}
	if fc.TitleMinLength != nil {
		base.TitleMinLength = *fc.TitleMinLength
	}
	if fc.LineTolerance != nil {
		base.LineTolerance = *fc.LineTolerance
	}
	if fc.ChordMergeTolerance != nil {
		base.ChordMergeTolerance = *fc.ChordMergeTolerance
	}
	if fc.MaxChordDistance != nil {
		base.MaxChordDistance = *fc.MaxChordDistance
	}
	if fc.ChordGapColumnWidth != nil {
		base.ChordGapColumnWidth = *fc.ChordGapColumnWidth
	}

	base.finalize()
	return base, nil
}
