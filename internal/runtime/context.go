// Package runtime provides the application runtime context for Cotton
// Tracker. A catastrophic failure to open the store is fatal to the whole
// session; there is no degraded mode.
package runtime

import (
	"os"

	"github.com/SolunkeSiddharth/cottontracker/internal/output"
	"github.com/SolunkeSiddharth/cottontracker/internal/storage"
	"github.com/SolunkeSiddharth/cottontracker/internal/tracker"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	SessionRepo *storage.SessionRepo
	HistoryRepo *storage.HistoryRepo
	ConfigRepo  *storage.ConfigRepo

	// Reconciler over the two stores
	Reconciler *tracker.Reconciler

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("COTTONTRACKER_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	sessionRepo := storage.NewSessionRepo(db)
	historyRepo := storage.NewHistoryRepo(db)
	configRepo := storage.NewConfigRepo(db)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:          db,
		Formatter:   formatter,
		SessionRepo: sessionRepo,
		HistoryRepo: historyRepo,
		ConfigRepo:  configRepo,
		Reconciler:  tracker.NewReconciler(sessionRepo, historyRepo),
		Debug:       opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
