package editor

// Mode is the editing mode.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeReplace
	ModeVisual
	ModeVisualLine
	ModeVisualBlock
)

var modeNames = [...]string{
	ModeNormal:      "NORMAL",
	ModeInsert:      "INSERT",
	ModeReplace:     "REPLACE",
	ModeVisual:      "VISUAL",
	ModeVisualLine:  "V-LINE",
	ModeVisualBlock: "V-BLOCK",
}

// String returns the name shown in the status line.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "UNKNOWN"
}

// IsVisual reports whether m is one of the visual modes.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine || m == ModeVisualBlock
}

// IsInsert reports whether typed runes change the buffer.
func (m Mode) IsInsert() bool {
	return m == ModeInsert || m == ModeReplace
}
