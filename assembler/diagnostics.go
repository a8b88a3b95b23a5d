package assembler

import "fmt"

// DiagnosticKind classifies a non-fatal finding of either pass.
type DiagnosticKind int

const (
	DiagRedefinedLabel DiagnosticKind = iota
	DiagUnknownOpcode
	DiagUnresolvedOperand
	DiagAddressOverflow
	DiagSkippedLine
	DiagUnsupportedLiteral
	DiagDataRange
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagRedefinedLabel:
		return "redefined label"
	case DiagUnknownOpcode:
		return "unknown opcode"
	case DiagUnresolvedOperand:
		return "unresolved operand"
	case DiagAddressOverflow:
		return "address overflow"
	case DiagSkippedLine:
		return "skipped line"
	case DiagUnsupportedLiteral:
		return "unsupported literal"
	case DiagDataRange:
		return "data out of range"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is a warning attached to a source line. Warnings never change
// the output of a pass.
type Diagnostic struct {
	LineNo int
	Kind   DiagnosticKind
	Text   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s", d.LineNo, d.Kind, d.Text)
}

func addWarning(list *[]Diagnostic, lineNo int, kind DiagnosticKind, format string, args ...interface{}) {
	*list = append(*list, Diagnostic{LineNo: lineNo, Kind: kind, Text: fmt.Sprintf(format, args...)})
}
