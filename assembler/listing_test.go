package assembler

import (
	"strings"
	"testing"
)

func TestListing_CopyProgram(t *testing.T) {
	p1, p2 := assemble(t, copySource, DefaultOptions())
	lines := strings.Split(strings.TrimSuffix(Listing(p1, p2), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 listing lines, got %d: %q", len(lines), lines)
	}

	want := [][]string{
		{"1000", "COPY", "START", "1000"},
		{"1000", "FIRST", "LDA", "ALPHA", "031003"},
		{"1003", "ALPHA", "WORD", "5"},
		{"1006", "END", "FIRST"},
	}
	for i, line := range lines {
		got := strings.Fields(line)
		if strings.Join(got, " ") != strings.Join(want[i], " ") {
			t.Errorf("line %d: expected %v, got %v", i, want[i], got)
		}
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %d has trailing space: %q", i, line)
		}
	}
}

func TestListing_WithoutPass2(t *testing.T) {
	p1 := pass1(t, copySource, DefaultOptions())
	if strings.Contains(Listing(p1, nil), "031003") {
		t.Fatal("expected no object code without a pass 2 result")
	}
	if Listing(nil, nil) != "" {
		t.Fatal("expected empty listing for nil pass 1 result")
	}
}
