package vim

import (
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/engine/textobj"
	"github.com/dshills/modalcore/internal/input/key"
)

// visualKey handles an unprefixed key in Visual mode. Motions extend the
// selection; operators act on it and end Visual mode in the editor.
func (s *State) visualKey(ev key.Event) Action {
	if s.countDigit(ev) {
		return s.hold()
	}
	if m, ok := simpleMotion(ev); ok {
		return s.emit(Action{Kind: ActionMotion, Motion: m})
	}
	if ev.IsCtrl('v') {
		return s.emit(Action{Kind: ActionEnterVisualBlock})
	}

	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	switch r {
	case 'v':
		return s.emit(Action{Kind: ActionEnterVisual})
	case 'V':
		return s.emit(Action{Kind: ActionEnterVisualLine})
	case 'o':
		return s.emit(Action{Kind: ActionSwapVisualAnchor})
	case 'd', 'x':
		return s.emit(Action{Kind: ActionVisualDelete})
	case 'c', 's':
		return s.emit(Action{Kind: ActionVisualChange})
	case 'y':
		return s.emit(Action{Kind: ActionVisualYank})
	case '>':
		return s.emit(Action{Kind: ActionVisualIndent})
	case '<':
		return s.emit(Action{Kind: ActionVisualDedent})
	case 'u':
		return s.emit(Action{Kind: ActionVisualCase, Operator: OpLowercase})
	case 'U':
		return s.emit(Action{Kind: ActionVisualCase, Operator: OpUppercase})
	case '~':
		return s.emit(Action{Kind: ActionVisualCase, Operator: OpToggleCase})
	case 'i':
		return s.wait(pending{kind: pendObject, modifier: textobj.Inner, target: forSelect})
	case 'a':
		return s.wait(pending{kind: pendObject, modifier: textobj.Around, target: forSelect})
	case '"':
		return s.wait(pending{kind: pendRegister})
	case 'f', 'F', 't', 'T', ';', ',', 'G', 'g':
		return s.motionRune(r)
	}
	return s.fail()
}

func (s *State) onVisualPrefix(ev key.Event) Action {
	s.pend = pending{}
	r, ok := ev.Plain()
	if !ok {
		return s.fail()
	}
	switch r {
	case 'g':
		return s.gotoMotion(motion.FileStart)
	case 'c':
		return s.emit(Action{Kind: ActionToggleCommentVisual})
	case 'u', 'U', '~':
		return s.emit(Action{Kind: ActionVisualCase, Operator: gOperator(r)})
	}
	return s.fail()
}
