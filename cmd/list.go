package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SolunkeSiddharth/cottontracker/internal/output"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "today"},
	Short:   "Show the current session's entries and totals",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := ctx.SessionRepo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewSessionResponse(entries))
	}

	cli := ctx.CLIFormatter()
	cli.PrintSession(entries)
	if len(entries) > 0 {
		cli.Muted("Run 'cottontracker complete' to save this day to history.")
	}
	return nil
}
