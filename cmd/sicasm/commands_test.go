package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/intuitionamiga/sicasm/assembler"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

const copyIntermediate = "\tCOPY\tSTART\t1000\n" +
	"1000\tFIRST\tLDA\tALPHA\n" +
	"1003\tALPHA\tWORD\t5\n" +
	"1006\t**\tEND\tFIRST\n" +
	"\n" +
	"Symbol Table:\n" +
	"FIRST\t1000\n" +
	"ALPHA\t1003\n" +
	"\n" +
	"Length of the program: 9\n"

func TestCmdPass1_Stdin(t *testing.T) {
	out, _, err := execute(t, copySource, "pass1")
	if err != nil {
		t.Fatalf("pass1: %v", err)
	}
	if out != copyIntermediate {
		t.Fatalf("expected %q, got %q", copyIntermediate, out)
	}
}

func TestCmdPass1_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copy.asm")
	if err := os.WriteFile(path, []byte(copySource), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "", "pass1", path)
	if err != nil {
		t.Fatalf("pass1: %v", err)
	}
	if out != copyIntermediate {
		t.Fatalf("expected %q, got %q", copyIntermediate, out)
	}
}

func TestCmdPass2_ReadsIntermediate(t *testing.T) {
	out, _, err := execute(t, copyIntermediate, "pass2", "-")
	if err != nil {
		t.Fatalf("pass2: %v", err)
	}
	if out != "1000\t031003\n" {
		t.Fatalf("expected %q, got %q", "1000\t031003\n", out)
	}
}

func TestCmdPass2_Blank(t *testing.T) {
	_, _, err := execute(t, "\n\n", "pass2")
	if !errors.Is(err, assembler.ErrNoPass1) {
		t.Fatalf("expected ErrNoPass1, got %v", err)
	}
}

func TestCmdAssemble(t *testing.T) {
	out, _, err := execute(t, copySource, "assemble")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	want := copyIntermediate + "\nObject Code:\n1000\t031003\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestCmdAssemble_Listing(t *testing.T) {
	out, _, err := execute(t, copySource, "assemble", "--listing")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(out, "  1000  FIRST    LDA    ALPHA      031003\n") {
		t.Fatalf("listing missing object code row:\n%s", out)
	}
}

func TestCmdAssemble_WarningsOnStderr(t *testing.T) {
	_, errOut, err := execute(t, "P START 0\nA LDA NOWHERE\nEND A\n", "assemble")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(errOut, "sicasm: warning: line 2") {
		t.Fatalf("expected a warning for line 2, got %q", errOut)
	}
}

func TestCmdPass1_Origin(t *testing.T) {
	out, _, err := execute(t, "; no start\nA LDA A\n", "pass1", "--origin", "0x10")
	if err != nil {
		t.Fatalf("pass1: %v", err)
	}
	if !strings.Contains(out, "16\tA\tLDA\tA\n") {
		t.Fatalf("expected record at origin 16, got %q", out)
	}
}

func TestCmdAssemble_Overflow(t *testing.T) {
	_, _, err := execute(t, copySource, "assemble", "--overflow", "reject")
	if !errors.Is(err, assembler.ErrAddressRange) {
		t.Fatalf("expected ErrAddressRange, got %v", err)
	}
	_, _, err = execute(t, copySource, "assemble", "--overflow", "sideways")
	if err == nil {
		t.Fatal("expected an error for an unknown overflow policy")
	}
}

func TestCmdPass1_MalformedNumber(t *testing.T) {
	_, _, err := execute(t, "P START ten\n", "pass1")
	var lerr *assembler.LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LineError, got %v", err)
	}
	if lerr.LineNo != 1 || !errors.Is(err, assembler.ErrMalformedNumber) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestCmdOpcodes(t *testing.T) {
	out, _, err := execute(t, "", "opcodes")
	if err != nil {
		t.Fatalf("opcodes: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != len(assembler.Mnemonics()) {
		t.Fatalf("expected %d opcodes, got %d", len(assembler.Mnemonics()), len(lines))
	}
	if !strings.Contains(out, "LDA\t03\n") {
		t.Fatalf("expected LDA 03 in %q", out)
	}
}

func TestCmdDump(t *testing.T) {
	_, errOut, err := execute(t, copySource, "pass1", "--dump")
	if err != nil {
		t.Fatalf("pass1: %v", err)
	}
	if !strings.Contains(errOut, "Pass1Result") {
		t.Fatalf("expected a dump of the pass 1 result, got %q", errOut)
	}
}
