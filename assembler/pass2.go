// pass2.go - object code generator

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/golang/glog"
)

// ObjectCode is the code generated for one intermediate record.
type ObjectCode struct {
	Address int
	Code    string
	LineNo  int
}

// Pass2Result holds the generated object code in source order.
type Pass2Result struct {
	Codes    []ObjectCode
	Warnings []Diagnostic
}

// Text renders one "address<TAB>code" line per object code.
func (r *Pass2Result) Text() string {
	var b strings.Builder
	for _, oc := range r.Codes {
		fmt.Fprintf(&b, "%d\t%s\n", oc.Address, oc.Code)
	}
	return b.String()
}

// Pass2 generates object code for the records of a completed pass 1.
//
// Only mnemonics of the opcode table whose operand names a known symbol
// produce code: the opcode followed by the symbol address. Directive lines,
// unknown mnemonics and unresolved operands are skipped and reported as
// warnings. With opts.EmitData, WORD and BYTE lines produce data code instead
// of being skipped.
func Pass2(p1 *Pass1Result, opts Options) (*Pass2Result, error) {
	if p1 == nil {
		return nil, ErrNoPass1
	}
	res := &Pass2Result{}

	for _, rec := range p1.Records {
		if opts.EmitData && (rec.Opcode == DirWord || rec.Opcode == DirByte) {
			code, ok, err := dataCode(rec.Line)
			if err != nil {
				return nil, lineErr(rec.LineNo, rec.String(), err)
			}
			if !ok {
				addWarning(&res.Warnings, rec.LineNo, DiagUnsupportedLiteral,
					"%s %s is neither C'...' nor X'...'", rec.Opcode, rec.Operand)
				continue
			}
			if rec.Opcode == DirWord && !wordInRange(rec.Operand) {
				addWarning(&res.Warnings, rec.LineNo, DiagDataRange,
					"WORD %s does not fit 24 bits, stored as %s", rec.Operand, code)
			}
			res.Codes = append(res.Codes, ObjectCode{Address: rec.Address, Code: code, LineNo: rec.LineNo})
			continue
		}

		op, ok := LookupOpcode(rec.Opcode)
		if !ok {
			if !IsDirective(rec.Opcode) {
				addWarning(&res.Warnings, rec.LineNo, DiagUnknownOpcode, "%s", rec.Opcode)
			}
			glog.V(2).Infof("pass2: no code for %q", rec.String())
			continue
		}

		addr, ok := p1.Symbols.Lookup(rec.Operand)
		if !ok {
			addWarning(&res.Warnings, rec.LineNo, DiagUnresolvedOperand, "%q is not a symbol", rec.Operand)
			continue
		}

		field, err := formatAddress(addr, opts.Overflow)
		if err != nil {
			return nil, lineErr(rec.LineNo, rec.String(), err)
		}
		if len(field) > 3 {
			addWarning(&res.Warnings, rec.LineNo, DiagAddressOverflow,
				"%s at %d needs %d digits", rec.Operand, addr, len(field))
		}
		res.Codes = append(res.Codes, ObjectCode{Address: rec.Address, Code: op + field, LineNo: rec.LineNo})
	}
	return res, nil
}

// formatAddress renders a symbol address in the three digit address field.
func formatAddress(addr int, policy OverflowPolicy) (string, error) {
	switch policy {
	case OverflowTruncate:
		return fmt.Sprintf("%03d", ((addr%1000)+1000)%1000), nil
	case OverflowReject:
		if addr < 0 || addr > 999 {
			return "", ErrAddressRange
		}
	}
	return fmt.Sprintf("%03d", addr), nil
}

// dataCode builds the object code of a WORD or BYTE line. ok is false for
// BYTE operands that are neither C'...' nor X'...'.
func dataCode(line Line) (code string, ok bool, err error) {
	if line.Opcode == DirWord {
		n, err := parseNumber(line.Operand)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("%06X", n&0xFFFFFF), true, nil
	}

	lit := line.Operand
	if len(lit) < 3 || lit[1] != '\'' || !strings.HasSuffix(lit, "'") {
		return "", false, nil
	}
	body := lit[2 : len(lit)-1]
	switch lit[0] {
	case 'C':
		return strings.ToUpper(hex.EncodeToString([]byte(body))), true, nil
	case 'X':
		if _, err := hex.DecodeString(body); err != nil {
			return "", false, ErrMalformedNumber
		}
		return strings.ToUpper(body), true, nil
	}
	return "", false, nil
}

// Signed and unsigned 24-bit values both fit a WORD.
const (
	wordMin = -1 << 23
	wordMax = 1<<24 - 1
)

func wordInRange(operand string) bool {
	n, err := parseNumber(operand)
	return err == nil && n >= wordMin && n <= wordMax
}

// RunPass2 re-tokenizes pass 1 intermediate text and generates its object
// code with default options. The symbol table trailer of the text is ignored
// in favour of symbols.
func RunPass2(intermediate string, symbols SymbolTable) (string, error) {
	if strings.TrimSpace(intermediate) == "" {
		return "", ErrNoPass1
	}
	p1, err := ParseIntermediate(intermediate)
	if err != nil {
		return "", err
	}
	p1.Symbols = symbols
	if p1.Symbols == nil {
		p1.Symbols = make(SymbolTable)
	}
	res, err := Pass2(p1, DefaultOptions())
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}
