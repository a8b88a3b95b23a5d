package assembler

import (
	"sort"
	"testing"
)

func TestOpcodeTable(t *testing.T) {
	expected := map[string]string{
		"LDA": "03", "STA": "0F", "LDCH": "53", "STCH": "57",
		"ADD": "18", "SUB": "1C", "MUL": "20", "DIV": "24",
		"COMP": "28", "J": "3C", "JEQ": "30", "JGT": "34",
		"JLT": "38", "JSUB": "48", "RSUB": "4C", "TIX": "2C",
		"AND": "40", "OR": "44", "LDX": "04", "STX": "10",
		"TD": "E0", "RD": "D8", "WD": "DC",
	}
	for mnemonic, want := range expected {
		got, ok := LookupOpcode(mnemonic)
		if !ok {
			t.Errorf("LookupOpcode(%q) not found", mnemonic)
			continue
		}
		if got != want {
			t.Errorf("LookupOpcode(%q) = %q, want %q", mnemonic, got, want)
		}
	}
	if n := len(Mnemonics()); n != len(expected) {
		t.Fatalf("expected %d mnemonics, got %d", len(expected), n)
	}
}

func TestDirectivesAreNotOpcodes(t *testing.T) {
	for _, dir := range []string{"START", "END", "WORD", "BYTE", "RESW", "RESB"} {
		if !IsDirective(dir) {
			t.Errorf("IsDirective(%q) = false", dir)
		}
		if _, ok := LookupOpcode(dir); ok {
			t.Errorf("LookupOpcode(%q) should fail", dir)
		}
	}
	if IsDirective("LDA") {
		t.Error("IsDirective(\"LDA\") = true")
	}
}

func TestMnemonicsSorted(t *testing.T) {
	names := Mnemonics()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted mnemonics, got %v", names)
	}
}

func TestParseOverflowPolicy(t *testing.T) {
	for _, p := range []OverflowPolicy{OverflowWiden, OverflowTruncate, OverflowReject} {
		got, err := ParseOverflowPolicy(p.String())
		if err != nil {
			t.Fatalf("ParseOverflowPolicy(%q) returned error: %v", p.String(), err)
		}
		if got != p {
			t.Fatalf("expected %v, got %v", p, got)
		}
	}
	if _, err := ParseOverflowPolicy("wrap"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
