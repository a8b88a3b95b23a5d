package main

import (
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"
)

// dumpValue pretty-prints v, with colors only when w is a terminal.
func dumpValue(w io.Writer, v interface{}) {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(isTerminal(w))
	_, _ = printer.Println(v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
