package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SolunkeSiddharth/cottontracker/internal/dateutil"
	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/output"
)

// Complete command flags.
var (
	completeFlagDate string
)

// completeCmd represents the complete command.
var completeCmd = &cobra.Command{
	Use:     "complete",
	Aliases: []string{"done"},
	Short:   "Save the current session to history",
	Long: `Promote all session entries into the history record for the target
date. Completing the same date again appends the new entries after the
existing ones and adds the totals together.

Examples:
  cottontracker complete
  cottontracker complete --date yesterday
  cottontracker complete --date 05-01-2024`,
	Args: cobra.NoArgs,
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().StringVarP(&completeFlagDate, "date", "d", "", "Target date (DD-MM-YYYY or natural language, default today)")

	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	date, err := dateutil.ParseInput(completeFlagDate)
	if err != nil {
		return err
	}

	record, err := ctx.Reconciler.CompleteDay(date)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptySession) {
			return apperrors.NewUserError(
				"No entries to save",
				"Add entries with 'cottontracker add' first")
		}
		if errors.Is(err, apperrors.ErrPromotedNotCleared) {
			// The history merge is committed. Retry only the clear step so
			// entries are never promoted twice.
			if clearErr := ctx.Reconciler.RetryClear(); clearErr != nil {
				if ctx.IsJSON() {
					return err
				}
				cli := ctx.CLIFormatter()
				cli.Warning(fmt.Sprintf("Day %s saved to history, but the session could not be cleared.", date))
				cli.Error("Session still not cleared. Run 'cottontracker complete' again only after clearing manually.")
				return err
			}

			// Promotion plus a recovered clear is a completed day.
			if ctx.IsJSON() {
				return ctx.Formatter.JSON(&output.RecordResponse{Status: "ok", Record: record})
			}
			cli := ctx.CLIFormatter()
			cli.Warning(fmt.Sprintf("Day %s saved to history, but the session could not be cleared.", date))
			cli.Success("Session cleared on retry.")
			return nil
		}
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.RecordResponse{Status: "ok", Record: record})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Day %s completed: %d workers, %s kg, %s",
		date, record.TotalWorkers, output.FormatKg(record.TotalKg), cli.Amount(record.TotalAmount)))
	return nil
}
