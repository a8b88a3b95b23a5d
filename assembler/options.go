package assembler

import "fmt"

// OverflowPolicy selects how pass 2 renders symbol addresses that do not fit
// the three digit address field.
type OverflowPolicy int

const (
	// OverflowWiden prints the full address (%03d), so 1003 becomes "1003".
	OverflowWiden OverflowPolicy = iota
	// OverflowTruncate keeps the low three decimal digits (addr mod 1000).
	OverflowTruncate
	// OverflowReject fails pass 2 with ErrAddressRange.
	OverflowReject
)

var overflowNames = map[OverflowPolicy]string{
	OverflowWiden:    "widen",
	OverflowTruncate: "truncate",
	OverflowReject:   "reject",
}

func (p OverflowPolicy) String() string {
	if name, ok := overflowNames[p]; ok {
		return name
	}
	return fmt.Sprintf("OverflowPolicy(%d)", int(p))
}

// ParseOverflowPolicy maps "widen", "truncate" or "reject" to a policy.
func ParseOverflowPolicy(name string) (OverflowPolicy, error) {
	for p, n := range overflowNames {
		if n == name {
			return p, nil
		}
	}
	return OverflowWiden, fmt.Errorf("unknown overflow policy %q (want widen, truncate or reject)", name)
}

// Options tunes both passes. The zero value reproduces the classic behaviour.
type Options struct {
	// Origin is the start address used when line 0 is not a START line.
	Origin int

	// AllowBareOpcode accepts single field lines such as "RSUB" as an opcode
	// with no operand instead of failing with ErrLineShape.
	AllowBareOpcode bool

	// EmitData makes pass 2 produce object code for WORD and BYTE lines.
	EmitData bool

	// Overflow selects how addresses of 1000 and above are rendered.
	Overflow OverflowPolicy
}

// DefaultOptions returns the options used by RunPass1 and RunPass2.
func DefaultOptions() Options {
	return Options{}
}
