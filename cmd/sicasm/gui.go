package main

import (
	"github.com/spf13/cobra"
)

func newGUICmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [file]",
		Short: "Open the three pane assembler window",
		Long: `gui shows the source, the pass 1 listing and the pass 2 object code side
by side. F1 runs pass 1, F2 runs pass 2, Ctrl+Shift+V pastes source from the
clipboard, Ctrl+Shift+C copies the object code and Esc quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			bench := newWorkbench(opts)
			if len(args) == 1 {
				src, err := readInput(cmd, args, false)
				if err != nil {
					return err
				}
				bench.SetSource(src)
			}
			return runGUI(bench)
		},
	}
}
