package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"

	"github.com/intuitionamiga/sicasm/assembler"
)

func newScriptCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "script file.lua [args...]",
		Short: "Run a Lua script with the sicasm module loaded",
		Long: `script runs a Lua file with a global "sicasm" table:

  sicasm.pass1(src)                 -> {intermediate, name, start, length, symbols, warnings} | nil, err
  sicasm.pass2(text [, symbols])    -> object code text | nil, err
  sicasm.listing(src)               -> combined listing | nil, err
  sicasm.opcode(mnemonic)           -> hex string | nil
  sicasm.write(...)                 -> writes its arguments to stdout

Extra command line arguments are available in the global "arg" table.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			L := newScriptState(opts, cmd.OutOrStdout(), args[1:])
			defer L.Close()
			if err := L.DoFile(args[0]); err != nil {
				return fmt.Errorf("script: %w", err)
			}
			return nil
		},
	}
}

// newScriptState returns a Lua state with the sicasm module and arg table
// installed. The caller closes it.
func newScriptState(opts assembler.Options, out io.Writer, args []string) *lua.LState {
	L := lua.NewState()
	host := &scriptHost{opts: opts, out: out}
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"pass1":   host.pass1,
		"pass2":   host.pass2,
		"listing": host.listing,
		"opcode":  host.opcode,
		"write":   host.write,
	})
	L.SetGlobal("sicasm", mod)

	argt := L.NewTable()
	for _, a := range args {
		argt.Append(lua.LString(a))
	}
	L.SetGlobal("arg", argt)
	return L
}

type scriptHost struct {
	opts assembler.Options
	out  io.Writer
}

func pushError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}

func (h *scriptHost) pass1(L *lua.LState) int {
	src := L.CheckString(1)
	p1, err := runPass1(src, h.opts)
	if err != nil {
		return pushError(L, err)
	}

	res := L.NewTable()
	res.RawSetString("intermediate", lua.LString(p1.Intermediate()))
	res.RawSetString("name", lua.LString(p1.Program.Name))
	res.RawSetString("start", lua.LNumber(p1.Program.Start))
	res.RawSetString("length", lua.LNumber(p1.Program.Length))

	syms := L.NewTable()
	for label, addr := range p1.Symbols {
		syms.RawSetString(label, lua.LNumber(addr))
	}
	res.RawSetString("symbols", syms)

	warns := L.NewTable()
	for _, d := range p1.Warnings {
		warns.Append(lua.LString(d.String()))
	}
	res.RawSetString("warnings", warns)

	L.Push(res)
	return 1
}

func (h *scriptHost) pass2(L *lua.LState) int {
	text := L.CheckString(1)
	symbols := L.OptTable(2, nil)
	if strings.TrimSpace(text) == "" {
		return pushError(L, assembler.ErrNoPass1)
	}

	p1, err := assembler.ParseIntermediate(text)
	if err != nil {
		return pushError(L, err)
	}
	if symbols != nil {
		p1.Symbols = make(assembler.SymbolTable)
		symbols.ForEach(func(k, v lua.LValue) {
			if n, ok := v.(lua.LNumber); ok {
				p1.Symbols[k.String()] = int(n)
			}
		})
	}
	p2, err := runPass2(p1, h.opts)
	if err != nil {
		return pushError(L, err)
	}
	L.Push(lua.LString(p2.Text()))
	return 1
}

func (h *scriptHost) listing(L *lua.LState) int {
	src := L.CheckString(1)
	p1, err := runPass1(src, h.opts)
	if err != nil {
		return pushError(L, err)
	}
	p2, err := runPass2(p1, h.opts)
	if err != nil {
		return pushError(L, err)
	}
	L.Push(lua.LString(assembler.Listing(p1, p2)))
	return 1
}

func (h *scriptHost) opcode(L *lua.LState) int {
	op, ok := assembler.LookupOpcode(L.CheckString(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(op))
	return 1
}

func (h *scriptHost) write(L *lua.LState) int {
	for i := 1; i <= L.GetTop(); i++ {
		fmt.Fprint(h.out, L.Get(i).String())
	}
	return 0
}
