package key

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Char('a'), "a"},
		{Char('A'), "A"},
		{Char(' '), "<Space>"},
		{Char('<'), "<lt>"},
		{Char('>'), ">"},
		{Ctrl('r'), "<C-r>"},
		{Ctrl('W'), "<C-w>"},
		{Esc, "<Esc>"},
		{Special(KeyEnter), "<CR>"},
		{Event{Key: KeyLeft, Mod: ModShift}, "<S-Left>"},
		{Event{Key: KeyRune, Rune: 'x', Mod: ModAlt}, "<A-x>"},
	}
	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Char('a')},
		{"<", Char('<')},
		{"<lt>", Char('<')},
		{"<Space>", Char(' ')},
		{"<C-r>", Ctrl('r')},
		{"<C-R>", Ctrl('r')},
		{"<c-w>", Ctrl('w')},
		{"<Esc>", Esc},
		{"<CR>", Special(KeyEnter)},
		{"<Enter>", Special(KeyEnter)},
		{"<BS>", Special(KeyBackspace)},
		{"<S-Left>", Event{Key: KeyLeft, Mod: ModShift}},
		{"<F5>", Special(KeyF5)},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("expected ErrEmptySpec, got %v", err)
	}
	if _, err := Parse("dw"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("expected ErrInvalidSpec for two keys, got %v", err)
	}
}

func TestParseSequenceRoundTrip(t *testing.T) {
	specs := []string{
		"d2w",
		`cs"'`,
		"ihello<Esc>",
		"<C-w>v",
		"3gcG",
		"a<lt>b<Space>c<CR>",
	}
	for _, spec := range specs {
		events, err := ParseSequence(spec)
		if err != nil {
			t.Fatalf("ParseSequence(%q): %v", spec, err)
		}
		if got := FormatSequence(events); got != spec {
			t.Errorf("expected %q, got %q", spec, got)
		}
	}
}

func TestParseSequenceUnknownBracketIsLiteral(t *testing.T) {
	events, err := ParseSequence("<nope>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 6 || events[0] != Char('<') {
		t.Errorf("expected literal runes, got %v", events)
	}
}

func TestPlainAndCtrl(t *testing.T) {
	if r, ok := Char('x').Plain(); !ok || r != 'x' {
		t.Errorf("expected plain x, got %q %v", r, ok)
	}
	if _, ok := Ctrl('x').Plain(); ok {
		t.Error("Ctrl-x should not be plain")
	}
	if !Ctrl('v').IsCtrl('v') {
		t.Error("expected IsCtrl('v')")
	}
	if Char('v').IsCtrl('v') {
		t.Error("plain v is not Ctrl-v")
	}
	shifted := Event{Key: KeyRune, Rune: 'G', Mod: ModShift}
	if r, ok := shifted.Plain(); !ok || r != 'G' {
		t.Errorf("shift is folded into the rune, got %q %v", r, ok)
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), Char('j')},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift), Char('G')},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModCtrl), Ctrl('r')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Esc},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Special(KeyEnter)},
		{"arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Special(KeyDown)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Special(KeyBackspace)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTcell(tt.ev); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
