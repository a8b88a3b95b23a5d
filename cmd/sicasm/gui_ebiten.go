//go:build !headless

// gui_ebiten.go - Three pane assembler window

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Key repeat in ticks (60 per second).
const (
	repeatDelay    = 24
	repeatInterval = 4
)

var (
	bgColor      = color.RGBA{24, 24, 32, 255}
	paneColor    = color.RGBA{36, 38, 48, 255}
	titleColor   = color.RGBA{190, 190, 190, 255}
	textColor    = color.RGBA{230, 230, 220, 255}
	buttonColor  = color.RGBA{60, 90, 140, 255}
	statusOK     = color.RGBA{0, 220, 90, 255}
	statusFailed = color.RGBA{240, 80, 70, 255}
)

type guiGame struct {
	bench  *workbench
	width  int
	height int
	scroll [paneCount]int
}

func runGUI(bench *workbench) error {
	g := &guiGame{bench: bench, width: windowWidth, height: windowHeight}
	ebiten.SetWindowTitle("sicasm")
	ebiten.SetWindowSize(g.width, g.height)
	return ebiten.RunGame(g)
}

func (g *guiGame) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	l := computeLayout(g.width, g.height)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.runPass1()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.runPass2()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case l.pass1Button.contains(x, y):
			g.runPass1()
		case l.pass2Button.contains(x, y):
			g.runPass2()
		}
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		x, y := ebiten.CursorPosition()
		if i := l.paneAt(x, y); i >= 0 {
			g.scroll[i] -= int(dy) * scrollLines
			g.scroll[i] = clampScroll(g.scroll[i], g.paneText(i), l.panes[i].visibleRows())
		}
	}

	if g.handleKeyboardInput() {
		// Keep the end of the source in view while typing.
		r := l.panes[paneSource]
		g.scroll[paneSource] = clampScroll(1<<30, g.bench.Source(), r.visibleRows())
	}
	return nil
}

func (g *guiGame) runPass1() {
	_ = g.bench.RunPass1()
	g.scroll[panePass1] = 0
}

func (g *guiGame) runPass2() {
	_ = g.bench.RunPass2()
	g.scroll[panePass2] = 0
}

// handleKeyboardInput edits the source buffer and reports whether it changed.
func (g *guiGame) handleKeyboardInput() bool {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		return g.handleClipboardPaste()
	}
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.handleClipboardCopy()
		return false
	}
	if ctrl {
		return false
	}

	changed := false
	for _, r := range ebiten.AppendInputChars(nil) {
		if isSourceRune(r) {
			g.bench.AppendSource(string(r))
			changed = true
		}
	}
	for _, key := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeyTab} {
		if repeatingKeyPressed(key) {
			if s, ok := translateEditKey(key); ok {
				g.bench.AppendSource(s)
				changed = true
			}
		}
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		g.bench.Backspace()
		changed = true
	}
	return changed
}

func (g *guiGame) handleClipboardPaste() bool {
	pasted, err := readClipboard()
	if err != nil {
		g.bench.setError("paste", err)
		return false
	}
	if pasted == "" {
		return false
	}
	g.bench.AppendSource(pasted)
	g.bench.setStatus("pasted %d bytes", len(pasted))
	return true
}

func (g *guiGame) handleClipboardCopy() {
	obj := g.bench.ObjectText()
	if obj == "" {
		g.bench.setStatus("nothing to copy, run pass 2 first")
		return
	}
	if err := writeClipboard(obj); err != nil {
		g.bench.setError("copy", err)
		return
	}
	g.bench.setStatus("copied object code to the clipboard")
}

// repeatingKeyPressed is true on the first tick of a press and then every
// repeatInterval ticks once repeatDelay has passed.
func repeatingKeyPressed(key ebiten.Key) bool {
	return repeatTick(inpututil.KeyPressDuration(key))
}

func repeatTick(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func translateEditKey(key ebiten.Key) (string, bool) {
	switch key {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "\n", true
	case ebiten.KeyTab:
		return "\t", true
	default:
		return "", false
	}
}

func isSourceRune(r rune) bool {
	return r >= 0x20 && r != 0x7F
}

func (g *guiGame) paneText(i int) string {
	switch i {
	case paneSource:
		return g.bench.Source()
	case panePass1:
		return g.bench.Pass1Text()
	case panePass2:
		return g.bench.Pass2Text()
	}
	return ""
}

func (g *guiGame) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	l := computeLayout(g.width, g.height)
	face := basicfont.Face7x13

	drawButton(screen, l.pass1Button, "Pass 1  [F1]")
	drawButton(screen, l.pass2Button, "Pass 2  [F2]")
	legend := "Ctrl+Shift+V paste   Ctrl+Shift+C copy object code   Esc quit"
	text.Draw(screen, legend, face, l.pass2Button.x+buttonW+2*margin, margin+17, titleColor)

	for i, r := range l.panes {
		ebitenutil.DrawRect(screen, float64(r.x), float64(r.y), float64(r.w), float64(r.h), paneColor)
		text.Draw(screen, paneTitles[i], face, r.x+4, r.y+13, titleColor)
		rows := paneLines(g.paneText(i), g.scroll[i], r.visibleRows(), r.visibleCols())
		for row, line := range rows {
			text.Draw(screen, line, face, r.x+4, r.y+paneTitleH+(row+1)*lineHeight, textColor)
		}
	}

	sb := l.statusBar
	ebitenutil.DrawRect(screen, float64(sb.x), float64(sb.y), float64(sb.w), float64(sb.h), color.RGBA{0, 0, 0, 180})
	msg, isErr := g.bench.Status()
	c := statusOK
	if isErr {
		c = statusFailed
	}
	text.Draw(screen, msg, face, sb.x+margin, sb.y+15, c)
}

func drawButton(screen *ebiten.Image, r rect, label string) {
	ebitenutil.DrawRect(screen, float64(r.x), float64(r.y), float64(r.w), float64(r.h), buttonColor)
	w := text.BoundString(basicfont.Face7x13, label).Dx()
	text.Draw(screen, label, basicfont.Face7x13, r.x+(r.w-w)/2, r.y+16, textColor)
}

func (g *guiGame) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
