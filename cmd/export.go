package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SolunkeSiddharth/cottontracker/internal/dateutil"
	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/output"
)

// Export command flags.
var (
	exportFlagFormat string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"dump"},
	Short:   "Export the history as JSON or CSV",
	Long: `Export all history records, oldest day first. JSON preserves the
full record structure and serves as a backup; CSV flattens every entry
into one row.

Examples:
  cottontracker export
  cottontracker export --format csv -o history.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "json", "Export format: json, csv")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	records, err := ctx.HistoryRepo.List()
	if err != nil {
		return err
	}
	sort.Slice(records, func(i, j int) bool {
		return dateutil.Before(records[i].Date, records[j].Date)
	})

	out := os.Stdout
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return apperrors.NewSystemErrorWithOp("export", "could not create output file", err)
		}
		defer f.Close()
		out = f
	}

	switch exportFlagFormat {
	case "json":
		formatter := output.NewFormatter()
		formatter.Writer = out
		if err := formatter.JSON(&output.HistoryResponse{Status: "ok", Records: records}); err != nil {
			return apperrors.NewSystemErrorWithOp("export", "could not write JSON", err)
		}
	case "csv":
		if err := writeCSV(out, records); err != nil {
			return apperrors.NewSystemErrorWithOp("export", "could not write CSV", err)
		}
	default:
		return apperrors.NewUserErrorWithField("format", exportFlagFormat,
			"Unknown export format",
			"Use json or csv")
	}

	if exportFlagOutput != "" && !ctx.IsJSON() {
		ctx.CLIFormatter().Success(fmt.Sprintf("Exported %d day(s) to %s", len(records), exportFlagOutput))
	}
	return nil
}

func writeCSV(out *os.File, records []*model.DayRecord) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"date", "name", "kg", "rate", "total"}); err != nil {
		return err
	}
	for _, r := range records {
		for _, e := range r.Entries {
			row := []string{
				r.Date,
				e.Name,
				strconv.FormatFloat(e.Quantity, 'f', -1, 64),
				strconv.FormatFloat(e.Rate, 'f', -1, 64),
				strconv.FormatFloat(e.Total, 'f', 2, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
