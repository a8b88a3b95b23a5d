package assembler

import (
	"fmt"
	"strings"
)

// Listing lines up every intermediate record with the object code pass 2
// generated for it. p2 may be nil, which lists addresses only.
func Listing(p1 *Pass1Result, p2 *Pass2Result) string {
	if p1 == nil {
		return ""
	}
	codes := make(map[int]string)
	if p2 != nil {
		for _, oc := range p2.Codes {
			codes[oc.LineNo] = oc.Code
		}
	}

	var b strings.Builder
	if h := p1.Header; h != nil {
		b.WriteString(strings.TrimRight(fmt.Sprintf("%6d  %-8s %-6s %s", p1.Program.Start, h.Label, h.Opcode, h.Operand), " "))
		b.WriteByte('\n')
	}
	for _, rec := range p1.Records {
		line := fmt.Sprintf("%6d  %-8s %-6s %-10s %s", rec.Address, rec.Label, rec.Opcode, rec.Operand, codes[rec.LineNo])
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
