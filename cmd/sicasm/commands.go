package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/intuitionamiga/sicasm/assembler"
)

func newPass1Cmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "pass1 [file|-]",
		Short: "Assign addresses and print the intermediate listing with symbol table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			src, err := readInput(cmd, args, false)
			if err != nil {
				return err
			}
			p1, err := runPass1(src, opts)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), p1.Warnings)
			if cfg.dump {
				dumpValue(cmd.ErrOrStderr(), p1)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), p1.Intermediate())
			return err
		},
	}
}

func newPass2Cmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "pass2 [file|-]",
		Short: "Generate object code from a pass 1 intermediate listing",
		Long: `pass2 reads the text printed by "sicasm pass1". The symbol table is
recovered from the listing's "Symbol Table:" section.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args, false)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return assembler.ErrNoPass1
			}
			p1, err := assembler.ParseIntermediate(text)
			if err != nil {
				return err
			}
			p2, err := runPass2(p1, opts)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), p2.Warnings)
			if cfg.dump {
				dumpValue(cmd.ErrOrStderr(), p2)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), p2.Text())
			return err
		},
	}
}

func newAssembleCmd(cfg *config) *cobra.Command {
	var (
		listing bool
		copyOut bool
		paste   bool
	)
	cmd := &cobra.Command{
		Use:   "assemble [file|-]",
		Short: "Run both passes and print the intermediate listing and object code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			src, err := readInput(cmd, args, paste)
			if err != nil {
				return err
			}
			p1, err := runPass1(src, opts)
			if err != nil {
				return err
			}
			p2, err := runPass2(p1, opts)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), p1.Warnings)
			printWarnings(cmd.ErrOrStderr(), p2.Warnings)
			if cfg.dump {
				dumpValue(cmd.ErrOrStderr(), p1)
				dumpValue(cmd.ErrOrStderr(), p2)
			}

			out := cmd.OutOrStdout()
			if listing {
				_, err = io.WriteString(out, assembler.Listing(p1, p2))
			} else {
				_, err = fmt.Fprintf(out, "%s\nObject Code:\n%s", p1.Intermediate(), p2.Text())
			}
			if err != nil {
				return err
			}
			if copyOut {
				if err := writeClipboard(p2.Text()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "sicasm: copied %d object code lines to the clipboard\n", len(p2.Codes))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&listing, "listing", false, "print a combined address/source/object code listing")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the object code to the clipboard")
	cmd.Flags().BoolVar(&paste, "paste", false, "read the source from the clipboard instead of a file")
	return cmd
}

func newOpcodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opcodes",
		Short: "Print the instruction mnemonic table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range assembler.Mnemonics() {
				op, _ := assembler.LookupOpcode(name)
				if _, err := fmt.Fprintf(out, "%s\t%s\n", name, op); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// readInput returns the named file, stdin for "-" or no argument, or the
// clipboard text when paste is set.
func readInput(cmd *cobra.Command, args []string, paste bool) (string, error) {
	if paste {
		return readClipboard()
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(data), nil
}

func runPass1(src string, opts assembler.Options) (*assembler.Pass1Result, error) {
	t0 := time.Now()
	p1, err := assembler.Pass1(src, opts)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("pass1: %d records, %d symbols, length %d in %v",
		len(p1.Records), len(p1.Symbols), p1.Program.Length, time.Since(t0))
	return p1, nil
}

func runPass2(p1 *assembler.Pass1Result, opts assembler.Options) (*assembler.Pass2Result, error) {
	t0 := time.Now()
	p2, err := assembler.Pass2(p1, opts)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("pass2: %d object codes in %v", len(p2.Codes), time.Since(t0))
	return p2, nil
}

func printWarnings(w io.Writer, list []assembler.Diagnostic) {
	for _, d := range list {
		fmt.Fprintf(w, "sicasm: warning: %s\n", d)
	}
}
