package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
)

var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleFiller    = tcell.StyleDefault.Dim(true)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// view holds rendering state that outlives a frame.
type view struct {
	left int
}

// cellWidth returns how many columns r occupies at display column dc.
func cellWidth(r rune, dc, tabWidth int) int {
	if r == '\t' {
		return tabWidth - dc%tabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// displayCol converts a character column into a screen column.
func displayCol(text string, col, tabWidth int) int {
	dc := 0
	i := 0
	for _, r := range text {
		if i == col {
			break
		}
		dc += cellWidth(r, dc, tabWidth)
		i++
	}
	return dc + max(col-i, 0)
}

// selection answers whether a character is inside the visual selection.
type selection struct {
	mode       editor.Mode
	start, end buffer.Position
	active     bool
}

func (s selection) contains(line, col int) bool {
	if !s.active || line < s.start.Line || line > s.end.Line {
		return false
	}
	switch s.mode {
	case editor.ModeVisualLine:
		return true
	case editor.ModeVisualBlock:
		lo, hi := min(s.start.Col, s.end.Col), max(s.start.Col, s.end.Col)
		return col >= lo && col <= hi
	}
	p := buffer.Pos(line, col)
	return !p.Before(s.start) && !s.end.Before(p)
}

// render draws one frame.
func (a *App) render() {
	w, h := a.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	a.screen.Clear()

	tab := a.cfg.Editor.TabWidth
	rows := max(h-1, 1)
	top := a.ed.Viewport()
	cur := a.ed.Cursor()

	cx := displayCol(a.doc.LineText(cur.Line), cur.Col, tab)
	if cx < a.view.left {
		a.view.left = cx
	} else if cx >= a.view.left+w {
		a.view.left = cx - w + 1
	}

	sel := selection{mode: a.ed.Mode()}
	sel.start, sel.end, sel.active = a.ed.Selection()

	for y := 0; y < rows && y < h; y++ {
		line := top + y
		if line >= a.doc.LineCount() {
			a.screen.SetContent(0, y, '~', nil, styleFiller)
			continue
		}
		a.drawLine(y, line, w, tab, sel)
	}
	if h > 1 {
		a.drawStatus(h-1, w, cur)
	}

	a.screen.ShowCursor(cx-a.view.left, cur.Line-top)
	a.screen.Show()
}

func (a *App) drawLine(y, line, w, tab int, sel selection) {
	dc := 0
	col := 0
	for _, r := range a.doc.LineText(line) {
		cw := cellWidth(r, dc, tab)
		style := styleText
		if sel.contains(line, col) {
			style = styleSelection
		}
		x := dc - a.view.left
		if x >= w {
			return
		}
		if x >= 0 {
			if r == '\t' {
				for i := range cw {
					a.screen.SetContent(x+i, y, ' ', nil, style)
				}
			} else {
				a.screen.SetContent(x, y, r, nil, style)
			}
		}
		dc += cw
		col++
	}
	// An empty line inside a selection still shows one selected cell.
	if col == 0 && sel.contains(line, 0) && a.view.left == 0 {
		a.screen.SetContent(0, y, ' ', nil, styleSelection)
	}
}

// statusText returns the left and right halves of the status line.
func (a *App) statusText(cur buffer.Position) (string, string) {
	left := a.ed.Status()
	if left == "" {
		if m := a.ed.Mode(); m != editor.ModeNormal {
			left = fmt.Sprintf("-- %s --", m)
		}
	}
	if r := a.disp.Recording(); r != 0 {
		if tag := fmt.Sprintf("recording @%c", r); !strings.Contains(left, tag) {
			left = strings.TrimSpace(left + " " + tag)
		}
	}

	name := a.doc.DisplayName()
	if a.doc.Dirty() {
		name += " [+]"
	}
	right := fmt.Sprintf("%s  %s  %d,%d", a.disp.PendingKeys(), name, cur.Line+1, cur.Col+1)
	return left, right
}

func (a *App) drawStatus(y, w int, cur buffer.Position) {
	for x := range w {
		a.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	left, right := a.statusText(cur)
	drawString(a.screen, 0, y, w, left, styleStatus)
	if rw := runewidth.StringWidth(right); rw < w {
		drawString(a.screen, w-rw, y, w, right, styleStatus)
	}
}

// drawString writes s from column x, clipped at w.
func drawString(s tcell.Screen, x, y, w int, str string, style tcell.Style) int {
	for _, r := range str {
		rw := max(runewidth.RuneWidth(r), 1)
		if x+rw > w {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}
