package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/deskpilot/internal/logger"
	"github.com/alexisbeaulieu97/deskpilot/internal/step"
)

type rootFlags struct {
	configDir string
	verbose   bool
	dryRun    bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "deskpilot",
		Short:         "Deskpilot runs data-driven desktop automation actions and macros",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if flags.verbose {
				level = "debug"
			}

			log, err := logger.New(logger.Options{
				Level:         level,
				HumanReadable: term.IsTerminal(int(os.Stderr.Fd())),
				Writer:        os.Stderr,
			})
			if err != nil {
				return err
			}
			flags.log = log

			step.RegisterDefaults()
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configDir, "config", "c", defaultConfigDir(),
		"Directory containing actions.yaml, macros.yaml, templates.yaml, profiles.yaml")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Log intended effects without performing them")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "deskpilot")
	}
	return "."
}
