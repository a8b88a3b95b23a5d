// optab.go - SIC mnemonic table and directive set

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

import "sort"

// Directive mnemonics. They are recognised structurally by the passes and are
// never members of the opcode table.
const (
	DirStart = "START"
	DirEnd   = "END"
	DirWord  = "WORD"
	DirByte  = "BYTE"
	DirResw  = "RESW"
	DirResb  = "RESB"
)

// opcodeTable maps each instruction mnemonic to its two hex digit opcode.
var opcodeTable = map[string]string{
	"LDA":  "03",
	"STA":  "0F",
	"LDCH": "53",
	"STCH": "57",

	"ADD":  "18",
	"SUB":  "1C",
	"MUL":  "20",
	"DIV":  "24",
	"COMP": "28",
	"J":    "3C",
	"JEQ":  "30",
	"JGT":  "34",
	"JLT":  "38",
	"JSUB": "48",
	"RSUB": "4C",
	"TIX":  "2C",
	"AND":  "40",
	"OR":   "44",
	"LDX":  "04",
	"STX":  "10",
	"TD":   "E0",
	"RD":   "D8",
	"WD":   "DC",
}

var directives = map[string]bool{
	DirStart: true,
	DirEnd:   true,
	DirWord:  true,
	DirByte:  true,
	DirResw:  true,
	DirResb:  true,
}

// LookupOpcode returns the opcode for an instruction mnemonic. Lookups are
// case-sensitive.
func LookupOpcode(mnemonic string) (string, bool) {
	op, ok := opcodeTable[mnemonic]
	return op, ok
}

// IsDirective reports whether op is one of the assembler directives.
func IsDirective(op string) bool {
	return directives[op]
}

// Mnemonics returns every instruction mnemonic in sorted order.
func Mnemonics() []string {
	names := make([]string, 0, len(opcodeTable))
	for name := range opcodeTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
