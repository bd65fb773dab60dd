// Package cmd provides the CLI commands for Cotton Tracker.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/logging"
	"github.com/SolunkeSiddharth/cottontracker/internal/output"
	"github.com/SolunkeSiddharth/cottontracker/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cottontracker",
	Short: "Record daily piece-rate cotton collection work",
	Long: `Cotton Tracker records daily piece-rate work entries (worker, kg
collected, rate) into a session, promotes completed days into a per-date
history, and exports printable PDF reports.

Quantities accept arithmetic expressions so partial weighings can be
summed directly: cottontracker add "Asha" 12+8.5 --rate 20

Examples:
  cottontracker add "Asha Pawar" 12.5 --rate 20
  cottontracker complete
  cottontracker history list
  cottontracker report 05-01-2024
  cottontracker report -o full.pdf`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		} else {
			logging.Init(logging.DefaultConfig())
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the current session
		return runList(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		report(err)
	}
	return err
}

// report prints an error through the notification surface, with the
// suggestion when the user can fix it.
func report(err error) {
	if ctx == nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return
	}

	if ctx.IsJSON() {
		suggestion := ""
		if ue, ok := apperrors.AsUserError(err); ok {
			suggestion = ue.Suggestion
		}
		_ = ctx.JSONFormatter().PrintError(err.Error(), suggestion)
		return
	}

	cli := ctx.CLIFormatter()
	cli.Error(err.Error())
	if ue, ok := apperrors.AsUserError(err); ok && ue.Suggestion != "" {
		cli.Muted("  " + ue.Suggestion)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("cottontracker %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
