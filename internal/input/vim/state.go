package vim

import (
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/engine/register"
	"github.com/dshills/modalcore/internal/engine/textobj"
	"github.com/dshills/modalcore/internal/input/key"
)

// pendingKind names the single thing State is waiting for.
type pendingKind uint8

const (
	pendNone pendingKind = iota
	pendRegister
	pendFind
	pendReplace
	pendWindow
	pendPrefix
	pendObject
	pendSurroundDelete
	pendSurroundOld
	pendSurroundNew
	pendSurroundTarget
	pendSurroundChar
	pendMarkSet
	pendMarkLine
	pendMarkExact
	pendMacroRecord
	pendMacroPlay
)

// objectTarget says what a resolved text object feeds.
type objectTarget uint8

const (
	forOperator objectTarget = iota
	forSelect
	forSurround
)

// pending is a tagged value; only the payload fields that belong to kind
// are meaningful.
type pending struct {
	kind     pendingKind
	find     motion.Kind
	prefix   rune
	modifier textobj.Modifier
	target   objectTarget
	object   textobj.Object
	old      rune
}

// State is the Normal and Visual mode key grammar. The zero value is not
// ready for use; call NewState.
type State struct {
	count    int
	opCount  int
	operator Operator
	register rune
	pend     pending

	// lastFind is kept across Reset for ; and ,.
	lastFind motion.Motion

	recording bool
	keys      []key.Event
}

// NewState returns an idle state machine.
func NewState() *State {
	return &State{}
}

// Reset drops all pending input. The last character search is kept.
func (s *State) Reset() {
	s.count = 0
	s.opCount = 0
	s.operator = OpNone
	s.register = 0
	s.pend = pending{}
	s.keys = s.keys[:0]
}

// Count returns the count typed so far, or zero.
func (s *State) Count() int {
	return multiply(s.opCount, s.count)
}

// Register returns the selected register, or zero.
func (s *State) Register() rune {
	return s.register
}

// TakeRegister returns the selected register and clears the selection.
func (s *State) TakeRegister() rune {
	r := s.register
	s.register = 0
	return r
}

// Operator returns the pending operator.
func (s *State) Operator() Operator {
	return s.operator
}

// LastFind returns the last f, F, t or T motion and whether there is one.
func (s *State) LastFind() (motion.Motion, bool) {
	return s.lastFind, s.lastFind.Kind != motion.None
}

// IsPending reports whether keys have been consumed without an action.
func (s *State) IsPending() bool {
	return len(s.keys) > 0
}

// PendingDisplay returns the keys consumed so far in vim notation, for the
// status line.
func (s *State) PendingDisplay() string {
	return key.FormatSequence(s.keys)
}

// SetRecording tells the state machine whether a macro is being recorded,
// which makes q stop the recording instead of starting one.
func (s *State) SetRecording(on bool) {
	s.recording = on
}

// Recording reports the flag set by SetRecording.
func (s *State) Recording() bool {
	return s.recording
}

// ProcessNormalKey feeds one Normal-mode key.
func (s *State) ProcessNormalKey(ev key.Event) Action {
	return s.process(ev, false)
}

// ProcessVisualKey feeds one key while a Visual selection is active.
func (s *State) ProcessVisualKey(ev key.Event) Action {
	return s.process(ev, true)
}

func (s *State) process(ev key.Event, visual bool) Action {
	s.keys = append(s.keys, ev)

	if isCancel(ev, visual) {
		s.Reset()
		if visual {
			return Action{Kind: ActionExitVisual, Count: 1}
		}
		return Action{Kind: ActionPending, Count: 1}
	}

	switch s.pend.kind {
	case pendNone:
		if visual {
			return s.visualKey(ev)
		}
		return s.normalKey(ev)
	case pendRegister:
		return s.onRegister(ev)
	case pendFind:
		return s.onFind(ev)
	case pendReplace:
		return s.onReplace(ev)
	case pendWindow:
		return s.onWindow(ev)
	case pendPrefix:
		if visual {
			return s.onVisualPrefix(ev)
		}
		return s.onPrefix(ev)
	case pendObject:
		return s.onObject(ev)
	case pendSurroundDelete, pendSurroundOld, pendSurroundNew:
		return s.onSurroundChar(ev)
	case pendSurroundTarget:
		return s.onSurroundTarget(ev)
	case pendSurroundChar:
		return s.onSurroundAdd(ev)
	case pendMarkSet, pendMarkLine, pendMarkExact:
		return s.onMark(ev)
	case pendMacroRecord, pendMacroPlay:
		return s.onMacro(ev)
	}
	return s.fail()
}

func isCancel(ev key.Event, visual bool) bool {
	if ev.Is(key.KeyEscape) || ev.IsCtrl('[') {
		return true
	}
	return visual && ev.IsCtrl('c')
}

func (s *State) wait(p pending) Action {
	s.pend = p
	return Action{Kind: ActionPending, Count: 1}
}

func (s *State) hold() Action {
	return Action{Kind: ActionPending, Count: 1}
}

func (s *State) fail() Action {
	s.Reset()
	return Action{Kind: ActionUnknown, Count: 1}
}

// emit completes an action with the pending count and register, then
// resets. A Count already set on a is kept.
func (s *State) emit(a Action) Action {
	if a.Count == 0 {
		a.Count = s.effectiveCount()
	}
	if a.Register == 0 {
		a.Register = s.register
	}
	s.Reset()
	return a
}

func (s *State) effectiveCount() int {
	if n := multiply(s.opCount, s.count); n > 0 {
		return n
	}
	return 1
}

func (s *State) hasCount() bool {
	return s.opCount > 0 || s.count > 0
}

func (s *State) setOperator(op Operator) Action {
	s.operator = op
	s.opCount = s.count
	s.count = 0
	s.pend = pending{}
	return s.hold()
}

// motionOrOperator emits a cursor motion, or applies the pending operator
// over it.
func (s *State) motionOrOperator(m motion.Motion, count int) Action {
	a := Action{Motion: m, Count: count}
	switch s.operator {
	case OpNone:
		a.Kind = ActionMotion
	case OpComment:
		a.Kind = ActionToggleCommentMotion
	default:
		a.Kind = ActionOperatorMotion
		a.Operator = s.operator
	}
	return s.emit(a)
}

func (s *State) lineOperator() Action {
	if s.operator == OpComment {
		return s.emit(Action{Kind: ActionToggleCommentLine})
	}
	return s.emit(Action{Kind: ActionOperatorLine, Operator: s.operator})
}

// gotoMotion is G or gg: a typed count picks the line and the action runs
// once.
func (s *State) gotoMotion(fallback motion.Kind) Action {
	if s.hasCount() {
		return s.motionOrOperator(motion.Line(s.effectiveCount()), 1)
	}
	return s.motionOrOperator(motion.New(fallback), 1)
}

func (s *State) command(kind ActionKind) Action {
	if s.operator != OpNone {
		return s.fail()
	}
	return s.emit(Action{Kind: kind})
}

// countDigit accumulates 1-9, and 0 once a count has started.
func (s *State) countDigit(ev key.Event) bool {
	r, ok := ev.Plain()
	if !ok || r < '0' || r > '9' || (r == '0' && s.count == 0) {
		return false
	}
	s.count = accumulate(s.count, r)
	return true
}

func (s *State) normalKey(ev key.Event) Action {
	if s.countDigit(ev) {
		return s.hold()
	}
	if m, ok := simpleMotion(ev); ok {
		return s.motionOrOperator(m, 0)
	}

	if r, ok := ev.Plain(); ok {
		return s.normalRune(r)
	}

	switch {
	case ev.IsCtrl('r'):
		return s.command(ActionRedo)
	case ev.IsCtrl('v'):
		return s.command(ActionEnterVisualBlock)
	case ev.IsCtrl('c'):
		return s.command(ActionQuit)
	case ev.IsCtrl('s'):
		return s.command(ActionSave)
	case ev.IsCtrl('w'):
		if s.operator != OpNone {
			return s.fail()
		}
		return s.wait(pending{kind: pendWindow})
	case ev.IsCtrl('h'):
		return s.command(ActionWindowLeft)
	case ev.IsCtrl('j'):
		return s.command(ActionWindowDown)
	case ev.IsCtrl('k'):
		return s.command(ActionWindowUp)
	case ev.IsCtrl('l'):
		return s.command(ActionWindowRight)
	case ev.IsCtrl('o'):
		return s.command(ActionJumpBack)
	case ev.IsCtrl('i'), ev.Is(key.KeyTab):
		return s.command(ActionJumpForward)
	case ev.Is(key.KeyF2):
		return s.command(ActionRenameSymbol)
	}
	return s.fail()
}

func (s *State) normalRune(r rune) Action {
	if s.operator != OpNone {
		return s.operatorRune(r)
	}

	switch r {
	case 'd':
		return s.setOperator(OpDelete)
	case 'c':
		return s.setOperator(OpChange)
	case 'y':
		return s.setOperator(OpYank)
	case '>':
		return s.setOperator(OpIndent)
	case '<':
		return s.setOperator(OpDedent)
	case '"':
		return s.wait(pending{kind: pendRegister})
	case 'f', 'F', 't', 'T', ';', ',', 'G', 'g':
		return s.motionRune(r)
	case 'z', '[', ']':
		return s.wait(pending{kind: pendPrefix, prefix: r})
	case 'r':
		return s.wait(pending{kind: pendReplace})
	case 'm':
		return s.wait(pending{kind: pendMarkSet})
	case '\'':
		return s.wait(pending{kind: pendMarkLine})
	case '`':
		return s.wait(pending{kind: pendMarkExact})
	case 'q':
		if s.recording {
			return s.emit(Action{Kind: ActionStopRecordMacro})
		}
		return s.wait(pending{kind: pendMacroRecord})
	case '@':
		return s.wait(pending{kind: pendMacroPlay})

	case 'i':
		return s.emit(Action{Kind: ActionEnterInsert, Insert: InsertAtCursor})
	case 'a':
		return s.emit(Action{Kind: ActionEnterInsert, Insert: InsertAfterCursor})
	case 'I':
		return s.emit(Action{Kind: ActionEnterInsert, Insert: InsertLineStart})
	case 'A':
		return s.emit(Action{Kind: ActionEnterInsert, Insert: InsertLineEnd})
	case 'o':
		return s.emit(Action{Kind: ActionEnterInsert, Insert: InsertLineBelow})
	case 'O':
		return s.emit(Action{Kind: ActionEnterInsert, Insert: InsertLineAbove})
	case 'R':
		return s.emit(Action{Kind: ActionEnterReplace})

	case 'x':
		return s.emit(Action{Kind: ActionDeleteChar})
	case 'X':
		return s.emit(Action{Kind: ActionDeleteCharBefore})
	case 'J':
		return s.emit(Action{Kind: ActionJoinLines})
	case 'p':
		return s.emit(Action{Kind: ActionPasteAfter})
	case 'P':
		return s.emit(Action{Kind: ActionPasteBefore})
	case 'D':
		return s.emit(Action{Kind: ActionOperatorMotion, Operator: OpDelete, Motion: motion.New(motion.LineEnd)})
	case 'C':
		return s.emit(Action{Kind: ActionOperatorMotion, Operator: OpChange, Motion: motion.New(motion.LineEnd)})
	case 'Y':
		return s.emit(Action{Kind: ActionOperatorLine, Operator: OpYank})
	case 'u':
		return s.emit(Action{Kind: ActionUndo})
	case '.':
		return s.emit(Action{Kind: ActionRepeatLastChange})
	case 'K':
		return s.emit(Action{Kind: ActionHover})

	case 'v':
		return s.emit(Action{Kind: ActionEnterVisual})
	case 'V':
		return s.emit(Action{Kind: ActionEnterVisualLine})

	case ':':
		return s.emit(Action{Kind: ActionEnterCommand})
	case '/':
		return s.emit(Action{Kind: ActionEnterSearchForward})
	case '?':
		return s.emit(Action{Kind: ActionEnterSearchBackward})
	case 'n':
		return s.emit(Action{Kind: ActionSearchNext})
	case 'N':
		return s.emit(Action{Kind: ActionSearchPrev})
	case '*':
		return s.emit(Action{Kind: ActionSearchWordForward})
	case '#':
		return s.emit(Action{Kind: ActionSearchWordBackward})
	}
	return s.fail()
}

// operatorRune handles a key typed while an operator waits for its target.
func (s *State) operatorRune(r rune) Action {
	if r == s.operator.lineKey() {
		return s.lineOperator()
	}
	switch r {
	case 'i':
		return s.wait(pending{kind: pendObject, modifier: textobj.Inner, target: forOperator})
	case 'a':
		return s.wait(pending{kind: pendObject, modifier: textobj.Around, target: forOperator})
	case 's':
		switch s.operator {
		case OpDelete:
			return s.wait(pending{kind: pendSurroundDelete})
		case OpChange:
			return s.wait(pending{kind: pendSurroundOld})
		case OpYank:
			return s.wait(pending{kind: pendSurroundTarget})
		}
		return s.fail()
	case 'f', 'F', 't', 'T', ';', ',', 'G', 'g':
		return s.motionRune(r)
	}
	return s.fail()
}

// motionRune handles the motion keys that need more than a table lookup.
func (s *State) motionRune(r rune) Action {
	switch r {
	case 'f':
		return s.wait(pending{kind: pendFind, find: motion.FindForward})
	case 'F':
		return s.wait(pending{kind: pendFind, find: motion.FindBackward})
	case 't':
		return s.wait(pending{kind: pendFind, find: motion.TillForward})
	case 'T':
		return s.wait(pending{kind: pendFind, find: motion.TillBackward})
	case ';':
		if s.lastFind.Kind == motion.None {
			return s.fail()
		}
		return s.motionOrOperator(s.lastFind, 0)
	case ',':
		if s.lastFind.Kind == motion.None {
			return s.fail()
		}
		return s.motionOrOperator(s.lastFind.Reverse(), 0)
	case 'G':
		return s.gotoMotion(motion.FileEnd)
	case 'g':
		return s.wait(pending{kind: pendPrefix, prefix: 'g'})
	}
	return s.fail()
}

// simpleMotion maps keys that are a motion by themselves.
func simpleMotion(ev key.Event) (motion.Motion, bool) {
	if r, ok := ev.Plain(); ok {
		var k motion.Kind
		switch r {
		case 'h':
			k = motion.Left
		case 'j':
			k = motion.Down
		case 'k':
			k = motion.Up
		case 'l', ' ':
			k = motion.Right
		case 'w':
			k = motion.WordForward
		case 'W':
			k = motion.BigWordForward
		case 'b':
			k = motion.WordBackward
		case 'B':
			k = motion.BigWordBackward
		case 'e':
			k = motion.WordEnd
		case 'E':
			k = motion.BigWordEnd
		case '0':
			k = motion.LineStart
		case '^':
			k = motion.FirstNonBlank
		case '$':
			k = motion.LineEnd
		case '}':
			k = motion.ParagraphForward
		case '{':
			k = motion.ParagraphBackward
		case '%':
			k = motion.MatchingBracket
		case 'H':
			k = motion.ScreenTop
		case 'M':
			k = motion.ScreenMiddle
		case 'L':
			k = motion.ScreenBottom
		default:
			return motion.Motion{}, false
		}
		return motion.New(k), true
	}

	switch {
	case ev.IsCtrl('d'):
		return motion.New(motion.HalfPageDown), true
	case ev.IsCtrl('u'):
		return motion.New(motion.HalfPageUp), true
	case ev.IsCtrl('f'), ev.Is(key.KeyPageDown):
		return motion.New(motion.PageDown), true
	case ev.IsCtrl('b'), ev.Is(key.KeyPageUp):
		return motion.New(motion.PageUp), true
	}

	switch ev.Key {
	case key.KeyLeft, key.KeyBackspace:
		return motion.New(motion.Left), true
	case key.KeyRight:
		return motion.New(motion.Right), true
	case key.KeyUp:
		return motion.New(motion.Up), true
	case key.KeyDown:
		return motion.New(motion.Down), true
	case key.KeyHome:
		return motion.New(motion.LineStart), true
	case key.KeyEnd:
		return motion.New(motion.LineEnd), true
	}
	return motion.Motion{}, false
}

func (s *State) onRegister(ev key.Event) Action {
	r, ok := ev.Plain()
	if !ok || !register.IsValidName(r) {
		return s.fail()
	}
	s.register = r
	s.pend = pending{}
	return s.hold()
}

func (s *State) onFind(ev key.Event) Action {
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	m := motion.Motion{Kind: s.pend.find, Char: r}
	s.lastFind = m
	return s.motionOrOperator(m, 0)
}

func (s *State) onReplace(ev key.Event) Action {
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	return s.emit(Action{Kind: ActionReplaceChar, Char: r})
}

func (s *State) onWindow(ev key.Event) Action {
	kind := ActionUnknown
	r, plain := ev.Plain()
	switch {
	case plain && r == 'h', ev.Key == key.KeyLeft, ev.IsCtrl('h'):
		kind = ActionWindowLeft
	case plain && r == 'j', ev.Key == key.KeyDown, ev.IsCtrl('j'):
		kind = ActionWindowDown
	case plain && r == 'k', ev.Key == key.KeyUp, ev.IsCtrl('k'):
		kind = ActionWindowUp
	case plain && r == 'l', ev.Key == key.KeyRight, ev.IsCtrl('l'):
		kind = ActionWindowRight
	case plain && r == 'w', ev.IsCtrl('w'):
		kind = ActionWindowNext
	case plain && r == 'W':
		kind = ActionWindowPrev
	case plain && r == 'v', ev.IsCtrl('v'):
		kind = ActionWindowSplitVertical
	case plain && r == 's', ev.IsCtrl('s'):
		kind = ActionWindowSplitHorizontal
	case plain && (r == 'q' || r == 'c'):
		kind = ActionWindowClose
	case plain && r == 'o', ev.IsCtrl('o'):
		kind = ActionWindowCloseOthers
	}
	if kind == ActionUnknown {
		return s.fail()
	}
	return s.emit(Action{Kind: kind, Count: 1})
}

// gOperator maps the key after g to the operator it starts.
func gOperator(r rune) Operator {
	switch r {
	case 'u':
		return OpLowercase
	case 'U':
		return OpUppercase
	case '~':
		return OpToggleCase
	case 'c':
		return OpComment
	}
	return OpNone
}

func (s *State) onPrefix(ev key.Event) Action {
	prefix := s.pend.prefix
	s.pend = pending{}
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}

	if prefix == 'g' {
		if r == 'g' {
			return s.gotoMotion(motion.FileStart)
		}
		op := gOperator(r)
		if s.operator != OpNone {
			// gugu, gUgU, g~g~ and gcgc repeat the operator linewise.
			if op != OpNone && op == s.operator {
				return s.lineOperator()
			}
			return s.fail()
		}
		if op != OpNone {
			return s.setOperator(op)
		}
		switch r {
		case 'd':
			return s.emit(Action{Kind: ActionGotoDefinition})
		case 'r':
			return s.emit(Action{Kind: ActionFindReferences})
		case 'l':
			return s.emit(Action{Kind: ActionShowDiagnosticFloat})
		case 'a':
			return s.emit(Action{Kind: ActionCodeActions})
		case 'v':
			return s.emit(Action{Kind: ActionReselectVisual})
		case 'i':
			return s.emit(Action{Kind: ActionGotoLastInsert})
		}
		return s.fail()
	}

	switch {
	case prefix == 'z' && r == 'z':
		return s.emit(Action{Kind: ActionScrollCenter})
	case prefix == 'z' && r == 't':
		return s.emit(Action{Kind: ActionScrollTop})
	case prefix == 'z' && r == 'b':
		return s.emit(Action{Kind: ActionScrollBottom})
	case prefix == ']' && r == 'd':
		return s.emit(Action{Kind: ActionNextDiagnostic})
	case prefix == '[' && r == 'd':
		return s.emit(Action{Kind: ActionPrevDiagnostic})
	case prefix == ']' && r == 'h':
		return s.emit(Action{Kind: ActionHarpoonNext})
	case prefix == '[' && r == 'h':
		return s.emit(Action{Kind: ActionHarpoonPrev})
	}
	return s.fail()
}

// objectKind maps an object key. The surround form also accepts r and a
// as aliases for [ and <.
func objectKind(r rune, surround bool) (textobj.Kind, bool) {
	if !surround && (r == 'r' || r == 'a') {
		return 0, false
	}
	return textobj.KindFor(r)
}

func (s *State) onObject(ev key.Event) Action {
	p := s.pend
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	kind, ok := objectKind(r, p.target == forSurround)
	if !ok {
		return s.fail()
	}
	obj := textobj.Object{Modifier: p.modifier, Kind: kind}

	switch p.target {
	case forSurround:
		return s.wait(pending{kind: pendSurroundChar, object: obj})
	case forSelect:
		return s.emit(Action{Kind: ActionSelectTextObject, Object: obj})
	}
	if s.operator == OpComment {
		return s.emit(Action{Kind: ActionToggleCommentTextObject, Object: obj})
	}
	return s.emit(Action{Kind: ActionOperatorTextObject, Operator: s.operator, Object: obj})
}

func (s *State) onSurroundChar(ev key.Event) Action {
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	r = textobj.NormalizeSurround(r)
	switch s.pend.kind {
	case pendSurroundDelete:
		return s.emit(Action{Kind: ActionDeleteSurround, Char: r, Count: 1})
	case pendSurroundOld:
		return s.wait(pending{kind: pendSurroundNew, old: r})
	}
	return s.emit(Action{Kind: ActionChangeSurround, Old: s.pend.old, Char: r, Count: 1})
}

func (s *State) onSurroundTarget(ev key.Event) Action {
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	switch r {
	case 'i':
		return s.wait(pending{kind: pendObject, modifier: textobj.Inner, target: forSurround})
	case 'a':
		return s.wait(pending{kind: pendObject, modifier: textobj.Around, target: forSurround})
	case 'w':
		return s.wait(pending{kind: pendSurroundChar, object: textobj.Object{Kind: textobj.Word}})
	case 'W':
		return s.wait(pending{kind: pendSurroundChar, object: textobj.Object{Kind: textobj.BigWord}})
	}
	return s.fail()
}

func (s *State) onSurroundAdd(ev key.Event) Action {
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	return s.emit(Action{Kind: ActionAddSurround, Object: s.pend.object, Char: textobj.NormalizeSurround(r), Count: 1})
}

func (s *State) onMark(ev key.Event) Action {
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	kind := ActionSetMark
	switch s.pend.kind {
	case pendMarkLine:
		kind = ActionGotoMarkLine
	case pendMarkExact:
		kind = ActionGotoMarkExact
	}
	return s.emit(Action{Kind: kind, Char: r, Count: 1})
}

func (s *State) onMacro(ev key.Event) Action {
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	if s.pend.kind == pendMacroRecord {
		return s.emit(Action{Kind: ActionStartRecordMacro, Char: r, Count: 1})
	}
	if r == '@' {
		return s.emit(Action{Kind: ActionReplayLastMacro})
	}
	return s.emit(Action{Kind: ActionPlayMacro, Char: r})
}
