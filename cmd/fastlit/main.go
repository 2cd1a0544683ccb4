package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/fastlit/internal/cli"
	"github.com/julianstephens/fastlit/internal/cli/system"
	"github.com/julianstephens/fastlit/internal/constants"
	"github.com/julianstephens/fastlit/internal/errors"
	"github.com/julianstephens/fastlit/internal/keyring"
	"github.com/julianstephens/fastlit/internal/logger"
	"github.com/julianstephens/fastlit/internal/notify"
	"github.com/julianstephens/fastlit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db or .json) or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables, .pgpass, or OS keyring instead." type:"string" default:"~/.config/fastlit/fastlit.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init      system.InitCmd      `cmd:"" help:"Initialize fastlit storage."`
	Tui       system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Start     cli.StartCmd        `cmd:"" help:"Start a fast."`
	End       cli.EndCmd          `cmd:"" help:"End the current fast."`
	Status    cli.StatusCmd       `cmd:"" help:"Show the current fast."`
	Snooze    cli.SnoozeCmd       `cmd:"" help:"Schedule a check-in reminder."`
	Plan      cli.PlanCmd         `cmd:"" help:"Show or change the fasting plan."`
	Reminders cli.RemindersCmd    `cmd:"" help:"Show or change reminder settings."`
	Settings  cli.SettingsCmd     `cmd:"" help:"Show or change display settings."`
	History   struct {
		List   cli.HistoryListCmd   `cmd:"" help:"List fasting history." default:"1"`
		Delete cli.HistoryDeleteCmd `cmd:"" help:"Delete history entries by position."`
	} `cmd:"" help:"Manage fasting history."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a database connection string in the OS keyring."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage database credentials."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Deliver due notifications (run from a timer)."`
	Debugs system.DebugCmd  `cmd:"" name:"debug" help:"Show diagnostic state."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Intermittent-fasting tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := resolveConfig(CLI.Config)

	var gw storage.Gateway
	switch {
	case strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://"):
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintf(os.Stderr, "❌ Error: PostgreSQL connection strings with embedded credentials are NOT allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use one of these secure alternatives:\n")
			fmt.Fprintf(os.Stderr, "       1. OS keyring:    fastlit keyring set \"postgresql://user@host:5432/fastlit\"\n")
			fmt.Fprintf(os.Stderr, "       2. Environment:   export PGPASSWORD=...\n")
			fmt.Fprintf(os.Stderr, "       3. .pgpass file:  Use a connection string without a password\n")
			os.Exit(1)
		}
		gw = storage.NewPostgresStore(config)
	case strings.HasSuffix(config, ".json"):
		gw = storage.NewJSONStore(config)
	default:
		gw = storage.NewSQLiteStore(config)
	}

	configDir := filepath.Dir(gw.ConfigPath())
	if strings.HasPrefix(config, "postgres") {
		// Connection strings are not paths; spool and logs live in the default dir
		configDir = filepath.Dir(expandPath(constants.DefaultConfigPath))
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	spool := notify.NewSpoolGateway(configDir)
	appCtx := &cli.Context{
		Store:     storage.NewStore(gw),
		Spool:     spool,
		Scheduler: notify.NewScheduler(spool),
	}

	err := ctx.Run(appCtx)
	if cerr := gw.Close(); cerr != nil {
		logger.Warn("Failed to close storage", "error", cerr)
	}
	if err != nil {
		errors.Fatal(err)
	}
}

// resolveConfig falls back to a keyring-stored connection string when the
// user kept the default path but stored one, and expands a leading ~.
func resolveConfig(config string) string {
	if config == constants.DefaultConfigPath {
		if connStr, err := keyring.GetConnectionString(); err == nil && connStr != "" {
			return connStr
		}
	}
	return expandPath(config)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
