package assembler

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func assemble(t *testing.T, src string, opts Options) (*Pass1Result, *Pass2Result) {
	t.Helper()
	p1 := pass1(t, src, opts)
	p2, err := Pass2(p1, opts)
	require.NoError(t, err)
	return p1, p2
}

func warningsOf(list []Diagnostic, kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range list {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// ============================================================================
// Scenario
// ============================================================================

func TestPass2_CopyProgram(t *testing.T) {
	_, p2 := assemble(t, copySource, DefaultOptions())

	require.Equal(t, []ObjectCode{{Address: 1000, Code: "031003", LineNo: 2}}, p2.Codes)
	require.Equal(t, "1000\t031003\n", p2.Text())
	// 1003 does not fit three digits and is printed in full.
	require.Len(t, warningsOf(p2.Warnings, DiagAddressOverflow), 1)
}

func TestRunPass2_CopyProgram(t *testing.T) {
	text, symbols, _, _, err := RunPass1(copySource)
	require.NoError(t, err)

	out, err := RunPass2(text, symbols)
	require.NoError(t, err)
	require.Equal(t, "1000\t031003\n", out)
}

func TestRunPass2_UsesGivenSymbols(t *testing.T) {
	text, _, _, _, err := RunPass1(copySource)
	require.NoError(t, err)

	out, err := RunPass2(text, SymbolTable{"ALPHA": 42})
	require.NoError(t, err)
	require.Equal(t, "1000\t03042\n", out)
}

// ============================================================================
// Directives
// ============================================================================

func TestPass2_DirectivesNeverProduceCode(t *testing.T) {
	src := `P START 0
A WORD 5
B BYTE A
C RESW 1
D RESB 1
E LDA A
END E`
	_, p2 := assemble(t, src, DefaultOptions())

	require.Equal(t, []ObjectCode{{Address: 8, Code: "03000", LineNo: 6}}, p2.Codes)
	require.Empty(t, warningsOf(p2.Warnings, DiagUnknownOpcode))
}

func TestPass2_EmitData(t *testing.T) {
	src := `P START 0
A WORD 5
B BYTE C'EOF'
C BYTE X'f1'
D WORD -1
E BYTE 7
F LDA A
END F`
	_, p2 := assemble(t, src, Options{EmitData: true})

	require.Equal(t, []ObjectCode{
		{Address: 0, Code: "000005", LineNo: 2},
		{Address: 3, Code: "454F46", LineNo: 3},
		{Address: 4, Code: "F1", LineNo: 4},
		{Address: 5, Code: "FFFFFF", LineNo: 5},
		{Address: 9, Code: "03000", LineNo: 7},
	}, p2.Codes)

	unsupported := warningsOf(p2.Warnings, DiagUnsupportedLiteral)
	require.Len(t, unsupported, 1)
	require.Equal(t, 6, unsupported[0].LineNo)
	require.Empty(t, warningsOf(p2.Warnings, DiagUnresolvedOperand))
	require.Empty(t, warningsOf(p2.Warnings, DiagDataRange))
}

func TestPass2_EmitDataWordRange(t *testing.T) {
	src := `P START 0
A WORD 16777215
B WORD -8388608
C WORD 16777216
D WORD -8388609
END A`
	_, p2 := assemble(t, src, Options{EmitData: true})

	require.Equal(t, []string{"FFFFFF", "800000", "000000", "7FFFFF"},
		[]string{p2.Codes[0].Code, p2.Codes[1].Code, p2.Codes[2].Code, p2.Codes[3].Code})

	ranged := warningsOf(p2.Warnings, DiagDataRange)
	require.Len(t, ranged, 2)
	require.Equal(t, 4, ranged[0].LineNo)
	require.Equal(t, 5, ranged[1].LineNo)
}

func TestPass2_EmitDataMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"word", "A WORD five"},
		{"hex byte", "A BYTE X'G1'"},
		{"odd hex byte", "A BYTE X'F'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1 := pass1(t, "P START 0\n"+tt.line+"\nEND A", DefaultOptions())
			_, err := Pass2(p1, Options{EmitData: true})
			require.ErrorIs(t, err, ErrMalformedNumber)

			// Without EmitData the same line is simply skipped.
			p2, err := Pass2(p1, DefaultOptions())
			require.NoError(t, err)
			require.Empty(t, p2.Codes)
		})
	}
}

// ============================================================================
// Address field
// ============================================================================

func TestPass2_AddressEndsInModThousand(t *testing.T) {
	src := `P START 1995
A LDA D
B STA C
C RESB 1
D WORD 0
J A
END A`
	for _, policy := range []OverflowPolicy{OverflowWiden, OverflowTruncate} {
		t.Run(policy.String(), func(t *testing.T) {
			p1, p2 := assemble(t, src, Options{Overflow: policy})
			require.Len(t, p2.Codes, 3)

			byLine := make(map[int]Record)
			for _, rec := range p1.Records {
				byLine[rec.LineNo] = rec
			}
			for _, oc := range p2.Codes {
				addr := p1.Symbols[byLine[oc.LineNo].Operand]
				suffix := fmt.Sprintf("%03d", addr%1000)
				if !strings.HasSuffix(oc.Code, suffix) {
					t.Fatalf("expected %q to end in %q", oc.Code, suffix)
				}
			}
		})
	}
}

func TestPass2_OverflowPolicies(t *testing.T) {
	p1 := pass1(t, copySource, DefaultOptions())

	widen, err := Pass2(p1, Options{Overflow: OverflowWiden})
	require.NoError(t, err)
	require.Equal(t, "031003", widen.Codes[0].Code)

	trunc, err := Pass2(p1, Options{Overflow: OverflowTruncate})
	require.NoError(t, err)
	require.Equal(t, "03003", trunc.Codes[0].Code)
	require.Empty(t, trunc.Warnings)

	_, err = Pass2(p1, Options{Overflow: OverflowReject})
	require.ErrorIs(t, err, ErrAddressRange)
	var le *LineError
	require.True(t, errors.As(err, &le))
	require.Equal(t, 2, le.LineNo)
}

func TestPass2_SmallAddressesArePadded(t *testing.T) {
	_, p2 := assemble(t, "P START 0\nA LDX B\nB WORD 7\nEND A", Options{Overflow: OverflowReject})
	require.Equal(t, "04003", p2.Codes[0].Code)
	require.Empty(t, p2.Warnings)
}

// ============================================================================
// Skipped lines
// ============================================================================

func TestPass2_UnknownOpcode(t *testing.T) {
	_, p2 := assemble(t, "P START 0\nA FOO B\nB WORD 1\nEND A", DefaultOptions())
	require.Empty(t, p2.Codes)

	unknown := warningsOf(p2.Warnings, DiagUnknownOpcode)
	require.Len(t, unknown, 1)
	require.Equal(t, 2, unknown[0].LineNo)
}

func TestPass2_UnresolvedOperand(t *testing.T) {
	_, p2 := assemble(t, "P START 0\nA LDA MISSING\nEND A", DefaultOptions())
	require.Empty(t, p2.Codes)
	require.Len(t, warningsOf(p2.Warnings, DiagUnresolvedOperand), 1)
}

func TestPass2_MnemonicsAreCaseSensitive(t *testing.T) {
	_, p2 := assemble(t, "P START 0\nA lda A\nEND A", DefaultOptions())
	require.Empty(t, p2.Codes)
	require.Len(t, warningsOf(p2.Warnings, DiagUnknownOpcode), 1)
}

func TestPass2_RedefinedLabelUsesLastAddress(t *testing.T) {
	_, p2 := assemble(t, "P START 0\nX WORD 1\nA LDA X\nX WORD 2\nEND A", DefaultOptions())
	require.Equal(t, []ObjectCode{{Address: 3, Code: "03006", LineNo: 3}}, p2.Codes)
}

// ============================================================================
// Ordering
// ============================================================================

func TestPass2_WithoutPass1(t *testing.T) {
	_, err := Pass2(nil, DefaultOptions())
	require.ErrorIs(t, err, ErrNoPass1)

	_, err = RunPass2(" \n\n", SymbolTable{})
	require.ErrorIs(t, err, ErrNoPass1)
}

func TestPass2_DoesNotTouchPass1Result(t *testing.T) {
	p1 := pass1(t, copySource, DefaultOptions())
	before := p1.Intermediate()

	for i := 0; i < 2; i++ {
		p2, err := Pass2(p1, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, p2.Codes, 1)
	}
	require.Equal(t, before, p1.Intermediate())
}
