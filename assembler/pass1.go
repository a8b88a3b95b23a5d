// pass1.go - location counter and symbol table builder

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
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// Record is one intermediate record: a source line with its assigned address.
type Record struct {
	Address int
	Line
	LineNo int // 1-based source line
}

// Program describes the assembled program as a whole.
type Program struct {
	Name   string // label of the START line, if any
	Start  int
	Length int
}

// Pass1Result is everything pass 1 hands to pass 2.
type Pass1Result struct {
	Program  Program
	Header   *Line // the START line, nil when the source has none
	Records  []Record
	Symbols  SymbolTable
	Warnings []Diagnostic
}

type pass1State int

const (
	pass1Init pass1State = iota
	pass1Scanning
	pass1Done
)

// Pass1 assigns an address to every source line, builds the symbol table and
// computes the program length.
//
// Line 0 is only inspected for a START directive: when it is one, its operand
// becomes the start address; otherwise the start is opts.Origin and line 0 is
// not assembled. Scanning stops after the END line, whose own location step is
// still applied. A malformed START, RESW or RESB count aborts the pass and
// returns a nil result.
func Pass1(source string, opts Options) (*Pass1Result, error) {
	res := &Pass1Result{Symbols: make(SymbolTable)}
	start := opts.Origin
	locctr := start
	state := pass1Init

scan:
	for i, raw := range strings.Split(source, "\n") {
		lineNo := i + 1
		text := strings.TrimSpace(raw)

		switch state {
		case pass1Init:
			state = pass1Scanning
			fields := strings.Fields(text)
			if len(fields) >= 3 && fields[1] == DirStart {
				n, err := parseNumber(fields[2])
				if err != nil {
					return nil, lineErr(lineNo, text, err)
				}
				start, locctr = n, n
				res.Header = &Line{Label: fields[0], Opcode: fields[1], Operand: fields[2]}
				res.Program.Name = fields[0]
				glog.V(2).Infof("pass1: program %s starts at %d", fields[0], start)
			} else if text != "" {
				addWarning(&res.Warnings, lineNo, DiagSkippedLine,
					"no START, first line %q not assembled", text)
			}

		case pass1Scanning:
			if text == "" {
				continue
			}
			line, err := Tokenize(text)
			if err != nil && !(opts.AllowBareOpcode && line.Opcode != "") {
				return nil, lineErr(lineNo, text, err)
			}
			res.Records = append(res.Records, Record{Address: locctr, Line: line, LineNo: lineNo})

			if line.HasLabel() {
				if prev, redefined := res.Symbols.Define(line.Label, locctr); redefined {
					addWarning(&res.Warnings, lineNo, DiagRedefinedLabel,
						"%s moved from %d to %d", line.Label, prev, locctr)
				}
				glog.V(2).Infof("pass1: label %s at %d", line.Label, locctr)
			}

			step, err := locationStep(line)
			if err != nil {
				return nil, lineErr(lineNo, text, err)
			}
			locctr += step

			if line.Opcode == DirEnd {
				state = pass1Done
			}

		case pass1Done:
			break scan
		}
	}

	res.Program.Start = start
	res.Program.Length = locctr - start
	return res, nil
}

// locationStep returns how far a line advances the location counter. BYTE
// always counts as one byte whatever its literal.
func locationStep(line Line) (int, error) {
	switch line.Opcode {
	case DirWord:
		return 3, nil
	case DirResw:
		n, err := parseNumber(line.Operand)
		if err != nil {
			return 0, err
		}
		return 3 * n, nil
	case DirResb:
		return parseNumber(line.Operand)
	case DirByte:
		return 1, nil
	}
	return 3, nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrMalformedNumber
	}
	return n, nil
}

// RunPass1 runs pass 1 with default options and returns its textual
// intermediate form together with the symbol table and program extent.
func RunPass1(source string) (intermediate string, symbols SymbolTable, start, length int, err error) {
	res, err := Pass1(source, DefaultOptions())
	if err != nil {
		return "", nil, 0, 0, err
	}
	return res.Intermediate(), res.Symbols, res.Program.Start, res.Program.Length, nil
}
