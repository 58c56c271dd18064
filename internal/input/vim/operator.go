package vim

// Operator is a command that acts on a motion, a text object or whole
// lines.
type Operator uint8

const (
	OpNone Operator = iota
	OpDelete
	OpChange
	OpYank
	OpIndent
	OpDedent
	OpLowercase
	OpUppercase
	OpToggleCase
	OpComment
)

var operatorKeys = [...]string{
	OpNone:       "",
	OpDelete:     "d",
	OpChange:     "c",
	OpYank:       "y",
	OpIndent:     ">",
	OpDedent:     "<",
	OpLowercase:  "gu",
	OpUppercase:  "gU",
	OpToggleCase: "g~",
	OpComment:    "gc",
}

// String returns the keys that invoke the operator.
func (o Operator) String() string {
	if int(o) < len(operatorKeys) {
		return operatorKeys[o]
	}
	return "?"
}

// IsCase reports whether o is one of gu, gU and g~.
func (o Operator) IsCase() bool {
	return o == OpLowercase || o == OpUppercase || o == OpToggleCase
}

// lineKey is the final key of the linewise form: d for dd, u for guu.
func (o Operator) lineKey() rune {
	switch o {
	case OpDelete:
		return 'd'
	case OpChange, OpComment:
		return 'c'
	case OpYank:
		return 'y'
	case OpIndent:
		return '>'
	case OpDedent:
		return '<'
	case OpLowercase:
		return 'u'
	case OpUppercase:
		return 'U'
	case OpToggleCase:
		return '~'
	}
	return 0
}
