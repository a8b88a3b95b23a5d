package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const replHelp = `Lines not starting with ':' are appended to the source.
  :pass1   run pass 1 and show the intermediate listing
  :pass2   run pass 2 on the last pass 1 and show the object code
  :list    show the source with line numbers
  :clear   empty the source
  :copy    copy the object code to the clipboard
  :help    show this help
  :quit    leave
`

func newReplCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Edit and assemble interactively on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			bench := newWorkbench(opts)

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return runTerminalREPL(f, cmd.OutOrStdout(), bench)
			}
			return runLineREPL(in, cmd.OutOrStdout(), bench)
		},
	}
}

// runTerminalREPL puts the terminal in raw mode and edits lines with
// term.Terminal, which gives history and cursor keys.
func runTerminalREPL(stdin *os.File, out io.Writer, bench *workbench) error {
	fd := int(stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("repl: failed to set raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{stdin, out}, "sicasm> ")
	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}

	sess := &replSession{bench: bench, out: t}
	fmt.Fprint(t, "sicasm repl, :help for commands\n")
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if sess.handle(line) {
			return nil
		}
	}
}

func runLineREPL(in io.Reader, out io.Writer, bench *workbench) error {
	sess := &replSession{bench: bench, out: out}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if sess.handle(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

type replSession struct {
	bench *workbench
	out   io.Writer
}

// handle runs one input line and reports whether the session should end.
func (s *replSession) handle(line string) (quit bool) {
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, ":") {
		s.bench.AppendSource(line + "\n")
		return false
	}

	switch strings.TrimSpace(line) {
	case ":pass1":
		if s.bench.RunPass1() == nil {
			fmt.Fprint(s.out, s.bench.Pass1Text())
		}
		s.printStatus()
	case ":pass2":
		if s.bench.RunPass2() == nil {
			fmt.Fprint(s.out, s.bench.Pass2Text())
		}
		s.printStatus()
	case ":list":
		src := strings.TrimSuffix(s.bench.Source(), "\n")
		if src == "" {
			fmt.Fprint(s.out, "(empty)\n")
			break
		}
		for i, l := range strings.Split(src, "\n") {
			fmt.Fprintf(s.out, "%4d  %s\n", i, l)
		}
	case ":clear":
		s.bench.ClearSource()
		fmt.Fprint(s.out, "source cleared\n")
	case ":copy":
		obj := s.bench.ObjectText()
		if obj == "" {
			fmt.Fprint(s.out, "nothing to copy, run :pass2 first\n")
			break
		}
		if err := writeClipboard(obj); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			break
		}
		fmt.Fprint(s.out, "object code copied\n")
	case ":help", ":h":
		fmt.Fprint(s.out, replHelp)
	case ":quit", ":q":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q, :help for commands\n", line)
	}
	return false
}

func (s *replSession) printStatus() {
	msg, isErr := s.bench.Status()
	if isErr {
		fmt.Fprintf(s.out, "error: %s\n", msg)
		return
	}
	for _, d := range s.bench.Warnings() {
		fmt.Fprintf(s.out, "warning: %s\n", d)
	}
	fmt.Fprintf(s.out, "%s\n", msg)
}
