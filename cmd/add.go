package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SolunkeSiddharth/cottontracker/internal/dateutil"
	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/expr"
	"github.com/SolunkeSiddharth/cottontracker/internal/output"
)

// Add command flags.
var (
	addFlagRate float64
	addFlagDate string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add NAME QUANTITY",
	Aliases: []string{"a"},
	Short:   "Add a worker entry to today's session",
	Long: `Add a worker entry to the current session. The quantity accepts an
arithmetic expression so partial weighings can be summed directly.

When --rate is omitted the last used rate is reused.

Examples:
  cottontracker add "Asha Pawar" 12.5 --rate 20
  cottontracker add "Bai" 12+8.5
  cottontracker add "Asha" 15 --date yesterday`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().Float64VarP(&addFlagRate, "rate", "r", 0, "Rate per kg (reuses the last rate when omitted)")
	addCmd.Flags().StringVarP(&addFlagDate, "date", "d", "", "Work date (DD-MM-YYYY or natural language, default today)")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	config, err := ctx.ConfigRepo.Get()
	if err != nil {
		return err
	}

	quantity, err := expr.Evaluate(args[1], config.Precision())
	if err != nil {
		return err
	}

	rate := addFlagRate
	if !cmd.Flags().Changed("rate") {
		if config.DefaultRate <= 0 {
			return apperrors.NewUserError(
				"Rate is required",
				"Pass --rate once; it is remembered for later entries")
		}
		rate = config.DefaultRate
	}

	date, err := dateutil.ParseInput(addFlagDate)
	if err != nil {
		return err
	}

	entry, err := ctx.SessionRepo.Add(name, quantity, rate, date)
	if err != nil {
		return err
	}

	// Remember the rate for the next entry. Not critical if it fails.
	if err := ctx.ConfigRepo.SaveDefaultRate(rate); err != nil {
		ctx.Debugf("failed to save default rate: %v", err)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEntryOutput(entry))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Added %s: %s kg × %s = %s",
		cli.WorkerName(entry.Name), output.FormatKg(entry.Quantity),
		output.FormatRate(entry.Rate), cli.Amount(entry.Total)))
	return nil
}
