package main

import "strings"

// Window geometry in pixels. Glyph metrics match basicfont.Face7x13.
const (
	windowWidth  = 1200
	windowHeight = 720

	glyphWidth  = 7
	lineHeight  = 14
	tabWidth    = 8
	margin      = 8
	buttonW     = 120
	buttonH     = 24
	statusBarH  = 22
	paneTitleH  = 18
	scrollLines = 3
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// Pane indexes, left to right.
const (
	paneSource = iota
	panePass1
	panePass2
	paneCount
)

var paneTitles = [paneCount]string{"Source", "Pass 1", "Pass 2"}

type layout struct {
	pass1Button rect
	pass2Button rect
	panes       [paneCount]rect
	statusBar   rect
}

func computeLayout(width, height int) layout {
	var l layout
	l.pass1Button = rect{margin, margin, buttonW, buttonH}
	l.pass2Button = rect{2*margin + buttonW, margin, buttonW, buttonH}

	top := 2*margin + buttonH
	bottom := height - statusBarH - margin
	paneW := (width - (paneCount+1)*margin) / paneCount
	for i := range l.panes {
		l.panes[i] = rect{margin + i*(paneW+margin), top, paneW, bottom - top}
	}
	l.statusBar = rect{0, height - statusBarH, width, statusBarH}
	return l
}

// paneAt returns the pane under (px, py), or -1.
func (l layout) paneAt(px, py int) int {
	for i, r := range l.panes {
		if r.contains(px, py) {
			return i
		}
	}
	return -1
}

// visibleRows is how many text lines fit under the pane title.
func (r rect) visibleRows() int {
	rows := (r.h - paneTitleH - 4) / lineHeight
	if rows < 0 {
		return 0
	}
	return rows
}

func (r rect) visibleCols() int {
	cols := (r.w - 8) / glyphWidth
	if cols < 0 {
		return 0
	}
	return cols
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(line string, width int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// paneLines splits text into display rows starting at row scroll, at most
// rows long, with tabs expanded and each row clipped to cols runes.
func paneLines(text string, scroll, rows, cols int) []string {
	if text == "" || rows <= 0 {
		return nil
	}
	all := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if scroll < 0 {
		scroll = 0
	}
	if scroll >= len(all) {
		return nil
	}
	all = all[scroll:]
	if len(all) > rows {
		all = all[:rows]
	}
	out := make([]string, len(all))
	for i, line := range all {
		line = expandTabs(line, tabWidth)
		if cols > 0 {
			if rs := []rune(line); len(rs) > cols {
				line = string(rs[:cols])
			}
		}
		out[i] = line
	}
	return out
}

// clampScroll keeps scroll inside [0, lines-rows].
func clampScroll(scroll int, text string, rows int) int {
	lines := strings.Count(strings.TrimSuffix(text, "\n"), "\n") + 1
	if text == "" {
		lines = 0
	}
	if max := lines - rows; scroll > max {
		scroll = max
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}
