package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/deskpilot/internal/engine"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

type runCmdOptions struct {
	macro      bool
	inputs     []string
	jsonOutput bool
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	opts := &runCmdOptions{}

	cmd := &cobra.Command{
		Use:   "run <id>",
		Short: "Run an action or macro by id",
		Long: "Run executes the steps of an action (or, with --macro, a macro) in order " +
			"and reports the collected logs, errors, and final status. " +
			"Interrupting with Ctrl+C requests cooperative cancellation: the run stops " +
			"at the next check point instead of mid-step.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.macro, "macro", "m", false, "Treat the id as a macro")
	cmd.Flags().StringArrayVarP(&opts.inputs, "input", "i", nil, "Runtime input as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the full result in JSON format")

	return cmd
}

func runRun(cmd *cobra.Command, flags *rootFlags, opts *runCmdOptions, id string) error {
	eng, err := loadEngines(flags)
	if err != nil {
		return err
	}

	inputs, err := parseInputs(opts.inputs)
	if err != nil {
		return err
	}

	token := model.NewCancelToken()
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)
	go func() {
		<-interrupts
		token.Cancel()
	}()

	runOpts := engine.RunOptions{DryRun: flags.dryRun, Cancel: token}

	var res *model.RunResult
	if opts.macro {
		res, err = eng.macros.Run(id, inputs, runOpts)
	} else {
		res, err = eng.actions.Run(id, inputs, runOpts)
	}
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(res); err != nil {
			return err
		}
	} else {
		renderResult(cmd, res)
	}

	if res.Status == model.StatusFailed {
		return fmt.Errorf("run finished with %d error(s)", len(res.Errors))
	}
	return nil
}

func renderResult(cmd *cobra.Command, res *model.RunResult) {
	out := cmd.OutOrStdout()

	for _, entry := range res.Logs {
		line := entry.Message
		if entry.StepType != "" {
			line = fmt.Sprintf("[%s] %s", entry.StepType, entry.Message)
		}
		if entry.Level == model.LevelDebug {
			line = dimStyle.Render(line)
		}
		fmt.Fprintln(out, line)
	}

	for _, actionErr := range res.Errors {
		if actionErr.StepType != "" {
			fmt.Fprintln(out, failedStyle.Render(fmt.Sprintf("error [%s]: %s", actionErr.StepType, actionErr.Message)))
			continue
		}
		fmt.Fprintln(out, failedStyle.Render("error: "+actionErr.Message))
	}

	fmt.Fprintf(out, "status: %s\n", renderStatus(res.Status))
}
