// Package classify assigns each page line a typographic role from
// purely visual cues: text shape, accent color, and font size.
package classify

// Role is the typographic role of one page line.
type Role int

const (
	// PlainText is the default role: a lyric or other ordinary line.
	PlainText Role = iota
	// ChordLine is a line made mostly of chord symbols.
	ChordLine
	// Title is the song title line.
	Title
	// Kapodaster is a capo-position annotation.
	Kapodaster
	// Comment is a free-standing parenthetical or continuation comment.
	Comment
	// RoleMarkerText is a lyric line beginning with a singer-role
	// marker token.
	RoleMarkerText
)

// String returns a string representation of the role
func (r Role) String() string {
	switch r {
	case ChordLine:
		return "chord"
	case Title:
		return "title"
	case Kapodaster:
		return "kapodaster"
	case Comment:
		return "comment"
	case RoleMarkerText:
		return "role-marker"
	default:
		return "text"
	}
}
