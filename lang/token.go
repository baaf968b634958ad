package lang

// Kind classifies a lexed token.
type Kind int

const (
	// KindMarker is a block marker: one of the open-bracket, close-bracket,
	// or separator characters.
	KindMarker Kind = iota

	// KindIdentifier is a run of word characters used as a call or variable
	// name.
	KindIdentifier

	// KindValue is a literal argument. The lexer never produces these
	// directly; they are Identifier tokens reclassified because they
	// immediately follow a separator.
	KindValue

	// KindEOF is the end-of-input sentinel. It terminates the scan loop and
	// is never appended to the token stream.
	KindEOF
)

// String returns a string representation of the token kind.
func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "Marker"
	case KindIdentifier:
		return "Identifier"
	case KindValue:
		return "Value"
	case KindEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Marker identifies which block marker a KindMarker token carries.
type Marker int

const (
	// MarkerNone is the zero value for non-marker tokens.
	MarkerNone Marker = iota

	// MarkerOpen is the opening bracket "[".
	MarkerOpen

	// MarkerClose is the closing bracket "]".
	MarkerClose

	// MarkerSeparator is the argument separator "|".
	MarkerSeparator
)

// String returns a string representation of the marker.
func (m Marker) String() string {
	switch m {
	case MarkerNone:
		return "None"
	case MarkerOpen:
		return "["
	case MarkerClose:
		return "]"
	case MarkerSeparator:
		return "|"
	default:
		return "Unknown"
	}
}

// Token is a single lexed unit. Tokens carry no position information beyond
// their order in the stream.
type Token struct {
	Kind   Kind
	Marker Marker
	Text   string
}

// IsMarker reports whether the token is a block marker of the given flavor.
func (t Token) IsMarker(m Marker) bool {
	return t.Kind == KindMarker && t.Marker == m
}

// String returns a compact representation used in error attributes and the
// dump command.
func (t Token) String() string {
	switch t.Kind {
	case KindMarker:
		return t.Marker.String()
	case KindEOF:
		return "EOF"
	default:
		return t.Kind.String() + "(" + t.Text + ")"
	}
}
