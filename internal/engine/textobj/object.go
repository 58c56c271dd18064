package textobj

// Modifier selects the inner or around variant of an object.
type Modifier uint8

const (
	Inner Modifier = iota
	Around
)

// String returns "i" or "a".
func (m Modifier) String() string {
	if m == Around {
		return "a"
	}
	return "i"
}

// Kind identifies the object type.
type Kind uint8

const (
	Word Kind = iota
	BigWord
	DoubleQuote
	SingleQuote
	BackTick
	Paren
	Brace
	Bracket
	Angle
)

// String returns the key that selects the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "w"
	case BigWord:
		return "W"
	case DoubleQuote:
		return `"`
	case SingleQuote:
		return "'"
	case BackTick:
		return "`"
	case Paren:
		return "("
	case Brace:
		return "{"
	case Bracket:
		return "["
	case Angle:
		return "<"
	default:
		return "?"
	}
}

// Delimiters returns the open and close characters of quote and bracket
// kinds. Word kinds return zeros.
func (k Kind) Delimiters() (open, close rune) {
	switch k {
	case DoubleQuote:
		return '"', '"'
	case SingleQuote:
		return '\'', '\''
	case BackTick:
		return '`', '`'
	case Paren:
		return '(', ')'
	case Brace:
		return '{', '}'
	case Bracket:
		return '[', ']'
	case Angle:
		return '<', '>'
	}
	return 0, 0
}

// IsQuote reports whether the kind is a quote kind.
func (k Kind) IsQuote() bool {
	return k == DoubleQuote || k == SingleQuote || k == BackTick
}

// KindFor maps an object key to its kind. The vim aliases b, B, r and a
// select parens, braces, brackets and angles.
func KindFor(r rune) (Kind, bool) {
	switch r {
	case 'w':
		return Word, true
	case 'W':
		return BigWord, true
	case '"':
		return DoubleQuote, true
	case '\'':
		return SingleQuote, true
	case '`':
		return BackTick, true
	case '(', ')', 'b':
		return Paren, true
	case '{', '}', 'B':
		return Brace, true
	case '[', ']', 'r':
		return Bracket, true
	case '<', '>', 'a':
		return Angle, true
	}
	return 0, false
}

// Object is a modifier and kind, as in "iw" or "a(".
type Object struct {
	Modifier Modifier
	Kind     Kind
}

// String returns the key sequence for the object, such as "i(".
func (o Object) String() string {
	return o.Modifier.String() + o.Kind.String()
}
