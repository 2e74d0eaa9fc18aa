package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type listOptions struct {
	jsonOutput bool
}

type listRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Steps       int    `json:"steps"`
	Description string `json:"description,omitempty"`
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured actions and enabled macros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	eng, err := loadEngines(flags)
	if err != nil {
		return err
	}

	var rows []listRow
	for _, a := range eng.actions.ListActions() {
		rows = append(rows, listRow{ID: a.ID, Name: a.Name, Kind: "action", Steps: len(a.Steps), Description: a.Description})
	}
	for _, m := range eng.macros.ListMacros() {
		rows = append(rows, listRow{ID: m.ID, Name: m.Name, Kind: "macro", Steps: len(m.Steps), Description: m.Description})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No actions or macros configured.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(fmt.Sprintf("%d definition(s)", len(rows))))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tSTEPS\tDESCRIPTION")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", row.ID, row.Name, row.Kind, row.Steps, truncate(row.Description, 48))
	}
	return w.Flush()
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
