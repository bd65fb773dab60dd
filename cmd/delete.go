package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command for session entries.
var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a session entry",
	Long: `Delete an entry from the current session by its identifier as shown
by 'list'. History entries are deleted with 'history delete'.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	key, err := resolveSessionKey(args[0])
	if err != nil {
		return err
	}

	entry, err := ctx.SessionRepo.Get(key)
	if err != nil {
		return err
	}

	if err := ctx.SessionRepo.Delete(key); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "ok", "deleted": key})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted entry for %s", entry.Name))
	return nil
}
