package editor

// ScrollCenter scrolls so the cursor line is in the middle (zz).
func (e *Editor) ScrollCenter() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setViewport(e.cursor.Line - e.textRows/2)
}

// ScrollTop scrolls so the cursor line is at the top (zt).
func (e *Editor) ScrollTop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setViewport(e.cursor.Line)
}

// ScrollBottom scrolls so the cursor line is at the bottom (zb).
func (e *Editor) ScrollBottom() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setViewport(e.cursor.Line - e.textRows + 1)
}

func (e *Editor) setViewport(top int) {
	e.viewport = max(min(top, e.lastLine()), 0)
}

// scrollToCursor moves the viewport the least needed to show the cursor
// with scrollOff lines of context.
func (e *Editor) scrollToCursor() {
	off := min(e.scrollOff, (e.textRows-1)/2)
	l := e.cursor.Line
	if l-off < e.viewport {
		e.setViewport(l - off)
	}
	if l+off >= e.viewport+e.textRows {
		e.setViewport(l + off - e.textRows + 1)
	}
}
