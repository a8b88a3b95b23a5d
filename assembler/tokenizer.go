package assembler

import (
	"fmt"
	"strings"
)

// NoLabel is the placeholder written in the label column of the intermediate
// text when a line has no label.
const NoLabel = "**"

// Line is one tokenized source line.
type Line struct {
	Label   string // empty when the line has no label
	Opcode  string
	Operand string // empty only for bare opcode lines
}

// HasLabel reports whether the line defines a label.
func (l Line) HasLabel() bool {
	return l.Label != ""
}

// labelColumn renders the label the way the intermediate text carries it.
func (l Line) labelColumn() string {
	if l.Label == "" {
		return NoLabel
	}
	return l.Label
}

// Tokenize splits a trimmed source line into label, opcode and operand.
//
//	3+ fields: label opcode operand (extra fields ignored)
//	2 fields:  opcode operand
//	1 field:   opcode only, returned together with an ErrLineShape error
//
// The caller decides whether a bare opcode is acceptable.
func Tokenize(text string) (Line, error) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 0:
		return Line{}, fmt.Errorf("%w: empty line", ErrLineShape)
	case 1:
		return Line{Opcode: fields[0]}, fmt.Errorf("%w: %q has no operand", ErrLineShape, fields[0])
	case 2:
		return Line{Opcode: fields[0], Operand: fields[1]}, nil
	}
	label := fields[0]
	if label == NoLabel {
		label = ""
	}
	return Line{Label: label, Opcode: fields[1], Operand: fields[2]}, nil
}

// String joins the present fields with single spaces.
func (l Line) String() string {
	parts := make([]string, 0, 3)
	for _, f := range []string{l.Label, l.Opcode, l.Operand} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}
