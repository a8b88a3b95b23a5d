package assembler

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber is returned when START, RESW, RESB (or WORD/BYTE data
	// with EmitData set) carry an operand that is not a valid number.
	ErrMalformedNumber = errors.New("malformed numeric operand")

	// ErrLineShape is returned for source lines with fewer than two fields.
	ErrLineShape = errors.New("unsupported line shape")

	// ErrNoPass1 is returned when pass 2 runs without a completed pass 1.
	ErrNoPass1 = errors.New("pass 2 requires a completed pass 1")

	// ErrAddressRange is returned by OverflowReject for addresses that do not
	// fit the three digit address field.
	ErrAddressRange = errors.New("address does not fit the 3-digit field")
)

// LineError ties a pass failure to the source line that caused it.
type LineError struct {
	LineNo int
	Text   string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.LineNo, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(lineNo int, text string, err error) error {
	return &LineError{LineNo: lineNo, Text: text, Err: err}
}
