package vim

import (
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/input/key"
)

// ProcessInsertKey maps a key typed in Insert or Replace mode. It keeps no
// state; the editor decides whether a rune inserts or overtypes.
func ProcessInsertKey(ev key.Event) Action {
	a := Action{Count: 1}
	switch {
	case ev.Is(key.KeyEscape), ev.IsCtrl('['), ev.IsCtrl('c'):
		a.Kind = ActionEnterNormal
	case ev.Key == key.KeyEnter, ev.IsCtrl('j'), ev.IsCtrl('m'):
		a.Kind = ActionInsertNewline
	case ev.Key == key.KeyTab, ev.IsCtrl('i'):
		a.Kind = ActionInsertTab
	case ev.Key == key.KeyBackspace, ev.IsCtrl('h'):
		a.Kind = ActionBackspace
	case ev.Key == key.KeyDelete:
		a.Kind = ActionDeleteForward
	case ev.IsCtrl('s'):
		a.Kind = ActionSave
	case ev.Key == key.KeyLeft:
		a.Kind, a.Motion = ActionMotion, motion.New(motion.Left)
	case ev.Key == key.KeyRight:
		a.Kind, a.Motion = ActionMotion, motion.New(motion.Right)
	case ev.Key == key.KeyUp:
		a.Kind, a.Motion = ActionMotion, motion.New(motion.Up)
	case ev.Key == key.KeyDown:
		a.Kind, a.Motion = ActionMotion, motion.New(motion.Down)
	case ev.Key == key.KeyHome:
		a.Kind, a.Motion = ActionMotion, motion.New(motion.LineStart)
	case ev.Key == key.KeyEnd:
		a.Kind, a.Motion = ActionMotion, motion.New(motion.LineEnd)
	default:
		r, ok := ev.Plain()
		if !ok {
			a.Kind = ActionUnknown
			break
		}
		a.Kind, a.Char = ActionInsertRune, r
	}
	return a
}
