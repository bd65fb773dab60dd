package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/output"
)

// History command flags.
var (
	historyFlagSearch string
)

// historyCmd groups the history subcommands.
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Work with completed days",
}

// historyListCmd lists history records.
var historyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List completed days",
	Long: `List completed days, newest first. --search filters by date or
worker-name substring.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

// historyShowCmd shows one history record with its entries.
var historyShowCmd = &cobra.Command{
	Use:   "show DATE",
	Short: "Show the entries of a completed day",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

// historyDeleteCmd deletes a whole day or one entry of it.
var historyDeleteCmd = &cobra.Command{
	Use:     "delete DATE [INDEX]",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a completed day, or one entry of it",
	Long: `Delete a whole history record, or a single entry by its index as
shown by 'history show'. Deleting the last entry removes the day.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runHistoryDelete,
}

func init() {
	historyListCmd.Flags().StringVarP(&historyFlagSearch, "search", "s", "", "Filter by date or worker name")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	records, err := ctx.HistoryRepo.Search(historyFlagSearch)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.HistoryResponse{Status: "ok", Records: records})
	}

	cli := ctx.CLIFormatter()
	if len(records) == 0 {
		cli.Muted("No completed days yet.")
		return nil
	}

	cli.Title("History")
	for _, r := range records {
		cli.PrintRecordSummary(r)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	record, err := ctx.HistoryRepo.Get(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.RecordResponse{Status: "ok", Record: record})
	}

	ctx.CLIFormatter().PrintRecord(record)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	date := args[0]

	// Whole-day deletion
	if len(args) == 1 {
		if err := ctx.HistoryRepo.Delete(date); err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]string{"status": "ok", "deleted": date})
		}
		ctx.CLIFormatter().Success(fmt.Sprintf("Deleted day %s", date))
		return nil
	}

	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		return apperrors.NewUserErrorWithField("index", args[1],
			"Invalid entry index",
			"Use the index shown by 'history show DATE'")
	}

	if err := ctx.HistoryRepo.DeleteEntryAt(date, index); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{
			"status":  "ok",
			"deleted": fmt.Sprintf("%s:%d", date, index),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Deleted entry %d of %s", index, date))

	// The whole record disappears with its last entry.
	if record, err := ctx.HistoryRepo.Get(date); err == nil {
		cli.PrintRecord(record)
	} else if apperrors.IsNotFound(err) {
		cli.Muted(fmt.Sprintf("Day %s removed (no entries left).", date))
	}
	return nil
}
