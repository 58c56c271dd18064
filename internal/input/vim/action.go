package vim

import (
	"fmt"
	"strings"

	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/engine/textobj"
)

// ActionKind identifies what an Action asks the editor to do.
type ActionKind uint8

const (
	// ActionPending means the key was consumed and more input is needed.
	// Escape also yields ActionPending after clearing pending input.
	ActionPending ActionKind = iota
	// ActionUnknown means the key sequence matched nothing.
	ActionUnknown

	ActionMotion
	ActionOperatorMotion
	ActionOperatorLine
	ActionOperatorTextObject
	ActionSelectTextObject

	ActionToggleCommentLine
	ActionToggleCommentMotion
	ActionToggleCommentTextObject
	ActionToggleCommentVisual

	ActionEnterInsert
	ActionEnterReplace
	ActionEnterNormal
	ActionDeleteChar
	ActionDeleteCharBefore
	ActionReplaceChar
	ActionJoinLines
	ActionPasteAfter
	ActionPasteBefore
	ActionUndo
	ActionRedo
	ActionRepeatLastChange

	ActionScrollCenter
	ActionScrollTop
	ActionScrollBottom

	ActionEnterVisual
	ActionEnterVisualLine
	ActionEnterVisualBlock
	ActionExitVisual
	ActionReselectVisual
	ActionSwapVisualAnchor
	ActionVisualDelete
	ActionVisualChange
	ActionVisualYank
	ActionVisualIndent
	ActionVisualDedent
	ActionVisualCase

	ActionDeleteSurround
	ActionChangeSurround
	ActionAddSurround

	ActionSetMark
	ActionGotoMarkLine
	ActionGotoMarkExact
	ActionGotoLastInsert

	ActionStartRecordMacro
	ActionStopRecordMacro
	ActionPlayMacro
	ActionReplayLastMacro

	ActionInsertRune
	ActionInsertNewline
	ActionInsertTab
	ActionBackspace
	ActionDeleteForward

	ActionEnterCommand
	ActionEnterSearchForward
	ActionEnterSearchBackward
	ActionSearchNext
	ActionSearchPrev
	ActionSearchWordForward
	ActionSearchWordBackward

	ActionQuit
	ActionSave

	ActionWindowSplitVertical
	ActionWindowSplitHorizontal
	ActionWindowClose
	ActionWindowCloseOthers
	ActionWindowNext
	ActionWindowPrev
	ActionWindowLeft
	ActionWindowRight
	ActionWindowUp
	ActionWindowDown

	ActionGotoDefinition
	ActionFindReferences
	ActionHover
	ActionShowDiagnosticFloat
	ActionNextDiagnostic
	ActionPrevDiagnostic
	ActionCodeActions
	ActionRenameSymbol
	ActionJumpBack
	ActionJumpForward
	ActionHarpoonNext
	ActionHarpoonPrev

	actionKindCount
)

var actionNames = [actionKindCount]string{
	ActionPending:                 "Pending",
	ActionUnknown:                 "Unknown",
	ActionMotion:                  "Motion",
	ActionOperatorMotion:          "OperatorMotion",
	ActionOperatorLine:            "OperatorLine",
	ActionOperatorTextObject:      "OperatorTextObject",
	ActionSelectTextObject:        "SelectTextObject",
	ActionToggleCommentLine:       "ToggleCommentLine",
	ActionToggleCommentMotion:     "ToggleCommentMotion",
	ActionToggleCommentTextObject: "ToggleCommentTextObject",
	ActionToggleCommentVisual:     "ToggleCommentVisual",
	ActionEnterInsert:             "EnterInsert",
	ActionEnterReplace:            "EnterReplace",
	ActionEnterNormal:             "EnterNormal",
	ActionDeleteChar:              "DeleteChar",
	ActionDeleteCharBefore:        "DeleteCharBefore",
	ActionReplaceChar:             "ReplaceChar",
	ActionJoinLines:               "JoinLines",
	ActionPasteAfter:              "PasteAfter",
	ActionPasteBefore:             "PasteBefore",
	ActionUndo:                    "Undo",
	ActionRedo:                    "Redo",
	ActionRepeatLastChange:        "RepeatLastChange",
	ActionScrollCenter:            "ScrollCenter",
	ActionScrollTop:               "ScrollTop",
	ActionScrollBottom:            "ScrollBottom",
	ActionEnterVisual:             "EnterVisual",
	ActionEnterVisualLine:         "EnterVisualLine",
	ActionEnterVisualBlock:        "EnterVisualBlock",
	ActionExitVisual:              "ExitVisual",
	ActionReselectVisual:          "ReselectVisual",
	ActionSwapVisualAnchor:        "SwapVisualAnchor",
	ActionVisualDelete:            "VisualDelete",
	ActionVisualChange:            "VisualChange",
	ActionVisualYank:              "VisualYank",
	ActionVisualIndent:            "VisualIndent",
	ActionVisualDedent:            "VisualDedent",
	ActionVisualCase:              "VisualCase",
	ActionDeleteSurround:          "DeleteSurround",
	ActionChangeSurround:          "ChangeSurround",
	ActionAddSurround:             "AddSurround",
	ActionSetMark:                 "SetMark",
	ActionGotoMarkLine:            "GotoMarkLine",
	ActionGotoMarkExact:           "GotoMarkExact",
	ActionGotoLastInsert:          "GotoLastInsert",
	ActionStartRecordMacro:        "StartRecordMacro",
	ActionStopRecordMacro:         "StopRecordMacro",
	ActionPlayMacro:               "PlayMacro",
	ActionReplayLastMacro:         "ReplayLastMacro",
	ActionInsertRune:              "InsertRune",
	ActionInsertNewline:           "InsertNewline",
	ActionInsertTab:               "InsertTab",
	ActionBackspace:               "Backspace",
	ActionDeleteForward:           "DeleteForward",
	ActionEnterCommand:            "EnterCommand",
	ActionEnterSearchForward:      "EnterSearchForward",
	ActionEnterSearchBackward:     "EnterSearchBackward",
	ActionSearchNext:              "SearchNext",
	ActionSearchPrev:              "SearchPrev",
	ActionSearchWordForward:       "SearchWordForward",
	ActionSearchWordBackward:      "SearchWordBackward",
	ActionQuit:                    "Quit",
	ActionSave:                    "Save",
	ActionWindowSplitVertical:     "WindowSplitVertical",
	ActionWindowSplitHorizontal:   "WindowSplitHorizontal",
	ActionWindowClose:             "WindowClose",
	ActionWindowCloseOthers:       "WindowCloseOthers",
	ActionWindowNext:              "WindowNext",
	ActionWindowPrev:              "WindowPrev",
	ActionWindowLeft:              "WindowLeft",
	ActionWindowRight:             "WindowRight",
	ActionWindowUp:                "WindowUp",
	ActionWindowDown:              "WindowDown",
	ActionGotoDefinition:          "GotoDefinition",
	ActionFindReferences:          "FindReferences",
	ActionHover:                   "Hover",
	ActionShowDiagnosticFloat:     "ShowDiagnosticFloat",
	ActionNextDiagnostic:          "NextDiagnostic",
	ActionPrevDiagnostic:          "PrevDiagnostic",
	ActionCodeActions:             "CodeActions",
	ActionRenameSymbol:            "RenameSymbol",
	ActionJumpBack:                "JumpBack",
	ActionJumpForward:             "JumpForward",
	ActionHarpoonNext:             "HarpoonNext",
	ActionHarpoonPrev:             "HarpoonPrev",
}

func (k ActionKind) String() string {
	if k < actionKindCount {
		return actionNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", k)
}

// IsPassthrough reports whether the action belongs to a layer above the
// editing engine: windows, language server, search, jump list.
func (k ActionKind) IsPassthrough() bool {
	return k >= ActionEnterCommand && k != ActionQuit && k != ActionSave
}

// InsertPosition says where EnterInsert places the cursor.
type InsertPosition uint8

const (
	InsertAtCursor    InsertPosition = iota // i
	InsertAfterCursor                       // a
	InsertLineStart                         // I
	InsertLineEnd                           // A
	InsertLineBelow                         // o
	InsertLineAbove                         // O
)

var insertNames = [...]string{"AtCursor", "AfterCursor", "LineStart", "LineEnd", "LineBelow", "LineAbove"}

func (p InsertPosition) String() string {
	if int(p) < len(insertNames) {
		return insertNames[p]
	}
	return "?"
}

// Action is a resolved command. Which fields are meaningful depends on
// Kind; Count is always at least one.
type Action struct {
	Kind     ActionKind
	Count    int
	Register rune
	Operator Operator
	Motion   motion.Motion
	Object   textobj.Object
	Insert   InsertPosition

	// Char is the replacement for r, the new delimiter for cs and ys, the
	// delimiter for ds, a mark or macro register name, or an inserted rune.
	Char rune
	// Old is the delimiter being replaced by cs.
	Old rune
}

// String renders the action for logs and test failures.
func (a Action) String() string {
	var b strings.Builder
	b.WriteString(a.Kind.String())
	var args []string
	switch a.Kind {
	case ActionMotion, ActionToggleCommentMotion:
		args = append(args, a.Motion.String())
	case ActionOperatorMotion:
		args = append(args, a.Operator.String(), a.Motion.String())
	case ActionOperatorLine, ActionVisualCase:
		args = append(args, a.Operator.String())
	case ActionOperatorTextObject:
		args = append(args, a.Operator.String(), a.Object.String())
	case ActionSelectTextObject, ActionToggleCommentTextObject:
		args = append(args, a.Object.String())
	case ActionAddSurround:
		args = append(args, a.Object.String(), fmt.Sprintf("%q", a.Char))
	case ActionChangeSurround:
		args = append(args, fmt.Sprintf("%q", a.Old), fmt.Sprintf("%q", a.Char))
	case ActionEnterInsert:
		args = append(args, a.Insert.String())
	case ActionReplaceChar, ActionDeleteSurround, ActionSetMark, ActionGotoMarkLine,
		ActionGotoMarkExact, ActionStartRecordMacro, ActionPlayMacro, ActionInsertRune:
		args = append(args, fmt.Sprintf("%q", a.Char))
	}
	if a.Count > 1 {
		args = append(args, fmt.Sprintf("x%d", a.Count))
	}
	if a.Register != 0 {
		args = append(args, fmt.Sprintf("reg=%q", a.Register))
	}
	if len(args) > 0 {
		b.WriteString("(" + strings.Join(args, ", ") + ")")
	}
	return b.String()
}
