package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SolunkeSiddharth/cottontracker/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open a full-screen dashboard with three tabs: the current session,
the completed-day history, and the report overview.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.DashboardConfig{
			SessionRepo: ctx.SessionRepo,
			HistoryRepo: ctx.HistoryRepo,
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
