package editor

import "github.com/dshills/modalcore/internal/input/vim"

// Execute applies a resolved action and reports whether the editor handled
// it. Pending and unknown input, macro control, save, quit and the
// passthrough actions are left to the caller.
func (e *Editor) Execute(a vim.Action) bool {
	count := max(a.Count, 1)
	e.log.Debug("execute", "action", a.String())

	switch a.Kind {
	case vim.ActionMotion:
		e.MoveCursor(a.Motion, count)
	case vim.ActionOperatorMotion:
		e.operateMotion(a.Operator, a.Motion, count, a.Register)
	case vim.ActionOperatorLine:
		e.operateLines(a.Operator, count, a.Register)
	case vim.ActionOperatorTextObject:
		e.operateObject(a.Operator, a.Object, a.Register)
	case vim.ActionSelectTextObject:
		e.SelectTextObject(a.Object)

	case vim.ActionToggleCommentLine:
		e.ToggleCommentLines(count)
	case vim.ActionToggleCommentMotion:
		e.ToggleCommentMotion(a.Motion, count)
	case vim.ActionToggleCommentTextObject:
		e.ToggleCommentTextObject(a.Object)
	case vim.ActionToggleCommentVisual:
		e.ToggleCommentVisual()

	case vim.ActionEnterInsert:
		e.EnterInsert(a.Insert)
	case vim.ActionEnterReplace:
		e.EnterReplace()
	case vim.ActionEnterNormal:
		e.EnterNormal()
	case vim.ActionDeleteChar:
		e.DeleteChar(count, a.Register)
	case vim.ActionDeleteCharBefore:
		e.DeleteCharBefore(count, a.Register)
	case vim.ActionReplaceChar:
		e.ReplaceChar(a.Char, count)
	case vim.ActionJoinLines:
		e.JoinLines(count)
	case vim.ActionPasteAfter:
		e.PasteAfter(a.Register, count)
	case vim.ActionPasteBefore:
		e.PasteBefore(a.Register, count)
	case vim.ActionUndo:
		e.Undo(count)
	case vim.ActionRedo:
		e.Redo(count)
	case vim.ActionRepeatLastChange:
		e.SetStatus("repeat not implemented")

	case vim.ActionScrollCenter:
		e.ScrollCenter()
	case vim.ActionScrollTop:
		e.ScrollTop()
	case vim.ActionScrollBottom:
		e.ScrollBottom()

	case vim.ActionEnterVisual:
		e.EnterVisual(ModeVisual)
	case vim.ActionEnterVisualLine:
		e.EnterVisual(ModeVisualLine)
	case vim.ActionEnterVisualBlock:
		e.EnterVisual(ModeVisualBlock)
	case vim.ActionExitVisual:
		e.ExitVisual()
	case vim.ActionReselectVisual:
		e.ReselectVisual()
	case vim.ActionSwapVisualAnchor:
		e.SwapVisualAnchor()
	case vim.ActionVisualDelete:
		e.VisualDelete(a.Register)
	case vim.ActionVisualChange:
		e.VisualChange(a.Register)
	case vim.ActionVisualYank:
		e.VisualYank(a.Register)
	case vim.ActionVisualIndent:
		e.VisualIndent(true)
	case vim.ActionVisualDedent:
		e.VisualIndent(false)
	case vim.ActionVisualCase:
		e.CaseVisual(a.Operator)

	case vim.ActionDeleteSurround:
		e.DeleteSurround(a.Char)
	case vim.ActionChangeSurround:
		e.ChangeSurround(a.Old, a.Char)
	case vim.ActionAddSurround:
		e.AddSurround(a.Object, a.Char)

	case vim.ActionSetMark:
		e.SetMark(a.Char)
	case vim.ActionGotoMarkLine:
		e.GotoMarkLine(a.Char)
	case vim.ActionGotoMarkExact:
		e.GotoMarkExact(a.Char)
	case vim.ActionGotoLastInsert:
		e.GotoLastInsert()

	case vim.ActionInsertRune:
		e.InsertRune(a.Char)
	case vim.ActionInsertNewline:
		e.InsertNewline()
	case vim.ActionInsertTab:
		e.InsertTab()
	case vim.ActionBackspace:
		e.Backspace()
	case vim.ActionDeleteForward:
		e.DeleteForward()

	default:
		return false
	}
	return true
}
