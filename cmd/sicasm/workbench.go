package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/intuitionamiga/sicasm/assembler"
)

// workbench is the editing session shared by the GUI and the REPL: a source
// buffer, the text shown in the two pass panes and a one line status.
//
// RunPass2 works on whatever RunPass1 last produced. Editing the source does
// not discard that result.
type workbench struct {
	opts assembler.Options

	source    strings.Builder
	p1        *assembler.Pass1Result
	p2        *assembler.Pass2Result
	pass1Text string
	pass2Text string

	status    string
	statusErr bool
}

func newWorkbench(opts assembler.Options) *workbench {
	return &workbench{opts: opts, status: "ready"}
}

func (w *workbench) Source() string { return w.source.String() }

func (w *workbench) SetSource(src string) {
	w.source.Reset()
	w.source.WriteString(src)
}

func (w *workbench) AppendSource(s string) {
	w.source.WriteString(s)
}

// Backspace removes the last rune of the source buffer.
func (w *workbench) Backspace() {
	src := w.source.String()
	if src == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(src)
	w.SetSource(src[:len(src)-size])
}

func (w *workbench) ClearSource() {
	w.source.Reset()
}

// RunPass1 clears the pass 1 pane and assembles the source buffer. A failed
// run leaves no pass 1 result behind.
func (w *workbench) RunPass1() error {
	w.pass1Text = ""
	w.p1 = nil

	p1, err := runPass1(w.Source(), w.opts)
	if err != nil {
		w.setError("pass 1", err)
		return err
	}
	w.p1 = p1
	w.pass1Text = p1.Intermediate()
	w.setStatus("pass 1: %d lines, start %d, length %d%s",
		len(p1.Records), p1.Program.Start, p1.Program.Length, warningSuffix(p1.Warnings))
	return nil
}

// RunPass2 clears the pass 2 pane and generates object code from the last
// successful pass 1.
func (w *workbench) RunPass2() error {
	w.pass2Text = ""
	w.p2 = nil

	if w.p1 == nil {
		w.setError("pass 2", assembler.ErrNoPass1)
		return assembler.ErrNoPass1
	}
	p2, err := runPass2(w.p1, w.opts)
	if err != nil {
		w.setError("pass 2", err)
		return err
	}
	w.p2 = p2
	w.pass2Text = p2.Text()
	w.setStatus("pass 2: %d object code lines%s", len(p2.Codes), warningSuffix(p2.Warnings))
	return nil
}

func (w *workbench) Pass1Text() string { return w.pass1Text }
func (w *workbench) Pass2Text() string { return w.pass2Text }

// ObjectText is the object code of the last pass 2, empty when there is none.
func (w *workbench) ObjectText() string {
	if w.p2 == nil {
		return ""
	}
	return w.p2.Text()
}

func (w *workbench) Listing() string {
	return assembler.Listing(w.p1, w.p2)
}

// Warnings returns the diagnostics of the last pass 1 and pass 2.
func (w *workbench) Warnings() []assembler.Diagnostic {
	var list []assembler.Diagnostic
	if w.p1 != nil {
		list = append(list, w.p1.Warnings...)
	}
	if w.p2 != nil {
		list = append(list, w.p2.Warnings...)
	}
	return list
}

func (w *workbench) Status() (msg string, isErr bool) {
	return w.status, w.statusErr
}

func (w *workbench) setStatus(format string, args ...interface{}) {
	w.status = fmt.Sprintf(format, args...)
	w.statusErr = false
}

func (w *workbench) setError(stage string, err error) {
	w.status = fmt.Sprintf("%s: %v", stage, err)
	w.statusErr = true
}

func warningSuffix(list []assembler.Diagnostic) string {
	switch len(list) {
	case 0:
		return ""
	case 1:
		return " (1 warning)"
	default:
		return fmt.Sprintf(" (%d warnings)", len(list))
	}
}
