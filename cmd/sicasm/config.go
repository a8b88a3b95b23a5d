package main

import (
	"fmt"
	"math"

	"github.com/japanoise/numparse"
	"github.com/spf13/pflag"

	"github.com/intuitionamiga/sicasm/assembler"
)

// config holds the flags shared by every subcommand.
type config struct {
	origin    string
	allowBare bool
	emitData  bool
	overflow  string
	dump      bool
}

func (c *config) register(fs *pflag.FlagSet) {
	fs.StringVar(&c.origin, "origin", "0", "start address when line 0 is not a START line (decimal, 0x hex, 0o octal, 0b binary)")
	fs.BoolVar(&c.allowBare, "allow-bare", false, "accept single field lines such as RSUB as an opcode without operand")
	fs.BoolVar(&c.emitData, "emit-data", false, "generate object code for WORD and BYTE lines")
	fs.StringVar(&c.overflow, "overflow", "widen", "addresses above 999: widen, truncate or reject")
	fs.BoolVar(&c.dump, "dump", false, "pretty-print pass results to stderr")
}

func (c *config) options() (assembler.Options, error) {
	origin, err := parseOrigin(c.origin)
	if err != nil {
		return assembler.Options{}, err
	}
	policy, err := assembler.ParseOverflowPolicy(c.overflow)
	if err != nil {
		return assembler.Options{}, err
	}
	return assembler.Options{
		Origin:          origin,
		AllowBareOpcode: c.allowBare,
		EmitData:        c.emitData,
		Overflow:        policy,
	}, nil
}

func parseOrigin(value string) (int, error) {
	parsed, err := numparse.UNumParse(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --origin %q: %v", value, err)
	}
	if parsed > math.MaxInt32 {
		return 0, fmt.Errorf("--origin out of range: %s", value)
	}
	return int(parsed), nil
}
