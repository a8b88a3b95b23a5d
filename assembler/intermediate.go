package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// Trailer section headers of the intermediate text.
const (
	SymbolTableHeader = "Symbol Table:"
	LengthHeader      = "Length of the program:"
)

// Intermediate renders the pass 1 result as tab separated text:
//
//		COPY	START	1000
//	1000	FIRST	LDA	ALPHA
//	...
//
//	Symbol Table:
//	FIRST	1000
//
//	Length of the program: 9
//
// The START line keeps its leading tab and has no address column.
func (r *Pass1Result) Intermediate() string {
	var b strings.Builder
	if r.Header != nil {
		fmt.Fprintf(&b, "\t%s\t%s\t%s\n", r.Header.Label, r.Header.Opcode, r.Header.Operand)
	}
	for _, rec := range r.Records {
		fmt.Fprintf(&b, "%d\t%s\t%s\t%s\n", rec.Address, rec.labelColumn(), rec.Opcode, rec.Operand)
	}

	b.WriteString("\n" + SymbolTableHeader + "\n")
	for _, sym := range r.Symbols.Sorted() {
		fmt.Fprintf(&b, "%s\t%d\n", sym.Label, sym.Address)
	}
	fmt.Fprintf(&b, "\n%s %d\n", LengthHeader, r.Program.Length)
	return b.String()
}

// ParseIntermediate re-tokenizes text produced by Intermediate. Blank lines
// and lines it cannot classify are skipped. Record line numbers refer to the
// intermediate text. When the text has no START header the program start is
// taken from the first record.
func ParseIntermediate(text string) (*Pass1Result, error) {
	res := &Pass1Result{Symbols: make(SymbolTable)}
	inSymbols := false

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		raw = strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		// Labels never contain spaces, so the headers cannot collide with
		// symbol rows such as "Length\t0".
		if trimmed == SymbolTableHeader {
			inSymbols = true
			continue
		}
		if strings.HasPrefix(trimmed, LengthHeader) {
			inSymbols = false
			if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(trimmed, LengthHeader))); err == nil {
				res.Program.Length = n
			}
			continue
		}

		fields := strings.Fields(trimmed)
		switch {
		case strings.HasPrefix(raw, "\t") && len(fields) >= 3 && fields[1] == DirStart:
			n, err := parseNumber(fields[2])
			if err != nil {
				return nil, lineErr(lineNo, trimmed, err)
			}
			res.Header = &Line{Label: fields[0], Opcode: fields[1], Operand: fields[2]}
			res.Program.Name = fields[0]
			res.Program.Start = n

		case inSymbols && len(fields) == 2:
			addr, err := parseNumber(fields[1])
			if err != nil {
				return nil, lineErr(lineNo, trimmed, err)
			}
			res.Symbols[fields[0]] = addr

		case !inSymbols && len(fields) >= 4:
			rec, err := parseRecord(lineNo, trimmed, fields[0], fields[1], fields[2], fields[3])
			if err != nil {
				return nil, err
			}
			res.Records = append(res.Records, rec)

		case !inSymbols && len(fields) == 3 && isNumber(fields[0]):
			rec, err := parseRecord(lineNo, trimmed, fields[0], fields[1], fields[2], "")
			if err != nil {
				return nil, err
			}
			res.Records = append(res.Records, rec)

		default:
			glog.V(2).Infof("intermediate: skipping line %d %q", lineNo, trimmed)
		}
	}

	if res.Header == nil && len(res.Records) > 0 {
		res.Program.Start = res.Records[0].Address
	}
	return res, nil
}

func parseRecord(lineNo int, text, addr, label, opcode, operand string) (Record, error) {
	n, err := parseNumber(addr)
	if err != nil {
		return Record{}, lineErr(lineNo, text, err)
	}
	if label == NoLabel {
		label = ""
	}
	return Record{
		Address: n,
		Line:    Line{Label: label, Opcode: opcode, Operand: operand},
		LineNo:  lineNo,
	}, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
