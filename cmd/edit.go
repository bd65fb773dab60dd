package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/expr"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/output"
)

// Edit command flags.
var (
	editFlagName string
	editFlagKg   string
	editFlagRate float64
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:     "edit TARGET",
	Aliases: []string{"e"},
	Short:   "Edit a session or history entry",
	Long: `Edit an entry. The target is either a session entry identifier (as
shown by 'list') or DATE:INDEX for a history entry (as shown by
'history show').

Only the given fields change; the total is recomputed.

Examples:
  cottontracker edit 0cc175b9 --kg 14.5
  cottontracker edit 05-01-2024:1 --name "Asha Pawar" --rate 22`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editFlagName, "name", "", "New worker name")
	editCmd.Flags().StringVar(&editFlagKg, "kg", "", "New quantity (accepts expressions)")
	editCmd.Flags().Float64Var(&editFlagRate, "rate", 0, "New rate per kg")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("kg") && !cmd.Flags().Changed("rate") {
		return apperrors.NewUserError(
			"Nothing to change",
			"Pass at least one of --name, --kg, --rate")
	}

	target, err := model.ParseEditTarget(args[0])
	if err != nil {
		return apperrors.NewUserErrorWithField("target", args[0],
			"Invalid edit target",
			"Use a session entry id or DATE:INDEX for history")
	}

	if target.IsSession() {
		return editSessionEntry(cmd, target.SessionID)
	}
	return editHistoryEntry(cmd, target.HistoryDate, target.HistoryIndex)
}

// resolveSessionKey matches a full key or a key suffix as shown by 'list'.
func resolveSessionKey(id string) (string, error) {
	if strings.HasPrefix(id, model.PrefixSession+":") {
		return id, nil
	}

	entries, err := ctx.SessionRepo.List()
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Key, id) {
			return e.Key, nil
		}
	}
	return "", apperrors.ErrEntryNotFound
}

// editedFields merges flag values over the current values, evaluating a
// quantity expression when one was given.
func editedFields(cmd *cobra.Command, name string, quantity, rate float64) (string, float64, float64, error) {
	if cmd.Flags().Changed("name") {
		name = editFlagName
	}
	if cmd.Flags().Changed("kg") {
		config, err := ctx.ConfigRepo.Get()
		if err != nil {
			return "", 0, 0, err
		}
		quantity, err = expr.Evaluate(editFlagKg, config.Precision())
		if err != nil {
			return "", 0, 0, err
		}
	}
	if cmd.Flags().Changed("rate") {
		rate = editFlagRate
	}
	return name, quantity, rate, nil
}

func editSessionEntry(cmd *cobra.Command, id string) error {
	key, err := resolveSessionKey(id)
	if err != nil {
		return err
	}

	current, err := ctx.SessionRepo.Get(key)
	if err != nil {
		return err
	}

	name, quantity, rate, err := editedFields(cmd, current.Name, current.Quantity, current.Rate)
	if err != nil {
		return err
	}

	entry, err := ctx.SessionRepo.Update(key, name, quantity, rate)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEntryOutput(entry))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Updated %s: %s kg × %s = %s",
		cli.WorkerName(entry.Name), output.FormatKg(entry.Quantity),
		output.FormatRate(entry.Rate), cli.Amount(entry.Total)))
	return nil
}

func editHistoryEntry(cmd *cobra.Command, date string, index int) error {
	record, err := ctx.HistoryRepo.Get(date)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(record.Entries) {
		return apperrors.ErrRecordNotFound
	}

	current := record.Entries[index]
	name, quantity, rate, err := editedFields(cmd, current.Name, current.Quantity, current.Rate)
	if err != nil {
		return err
	}

	record, err = ctx.HistoryRepo.UpdateEntryAt(date, index, name, quantity, rate)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.RecordResponse{Status: "ok", Record: record})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Updated entry %d of %s", index, date))
	cli.PrintRecord(record)
	return nil
}
