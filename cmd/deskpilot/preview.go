package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/deskpilot/internal/engine"
)

type previewCmdOptions struct {
	macro  bool
	inputs []string
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := &previewCmdOptions{}

	cmd := &cobra.Command{
		Use:   "preview <id>",
		Short: "Show the steps an action or macro would execute, without running them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.macro, "macro", "m", false, "Treat the id as a macro")
	cmd.Flags().StringArrayVarP(&opts.inputs, "input", "i", nil, "Runtime input as key=value (repeatable)")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, opts *previewCmdOptions, id string) error {
	eng, err := loadEngines(flags)
	if err != nil {
		return err
	}

	inputs, err := parseInputs(opts.inputs)
	if err != nil {
		return err
	}

	var preview engine.Preview
	if opts.macro {
		preview, err = eng.macros.Preview(id, inputs)
	} else {
		preview, err = eng.actions.Preview(id, inputs)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(preview.Name))
	for i, line := range preview.Lines {
		fmt.Fprintf(out, "%2d. %s\n", i+1, line)
	}
	if len(preview.Lines) == 0 {
		fmt.Fprintln(out, dimStyle.Render("(no steps)"))
	}
	return nil
}
