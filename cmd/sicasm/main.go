package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	// glog writes to files under $TMPDIR unless told otherwise.
	_ = goflag.Set("logtostderr", "true")
	_ = goflag.CommandLine.Parse(nil)

	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sicasm: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:   "sicasm",
		Short: "Two-pass SIC assembler",
		Long: `sicasm translates SIC assembly source in two passes.

Pass 1 assigns addresses and builds the symbol table, producing an
intermediate listing. Pass 2 turns that listing into object code.

Examples:
  sicasm pass1 copy.asm > copy.int
  sicasm pass2 copy.int
  sicasm assemble --listing copy.asm
  sicasm gui copy.asm`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg.register(root.PersistentFlags())
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	root.AddCommand(
		newPass1Cmd(cfg),
		newPass2Cmd(cfg),
		newAssembleCmd(cfg),
		newOpcodesCmd(),
		newReplCmd(cfg),
		newGUICmd(cfg),
		newScriptCmd(cfg),
	)
	return root
}
