package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/osse101/AlbionStats_Go/internal/bootstrap"
	"github.com/osse101/AlbionStats_Go/internal/config"
	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/server"
)

// RootOptions holds global flags for all commands, plus the configuration
// loaded before any subcommand runs.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	Config *config.Config
}

// NewRootCommand creates the root command for albionctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "albionctl",
		Short: "Albion Stats maintenance tool",
		Long: `Maintenance commands for the Albion Stats dashboard.

Configuration comes from the same environment variables and .env file as the
server (DB_PATH, EQUIPMENT_PATH, CSV_DIR, CHARACTERS, ...).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s %q: must be one of %v", ErrMsgInvalidFormat, opts.Format, ValidFormats))
			}

			cfg, err := config.Load()
			if err != nil {
				return WrapExitError(ExitCommandError, ErrMsgLoadConfig, err)
			}
			opts.Config = cfg

			// Diagnostics go to stderr so json output on stdout stays parseable
			level := logger.LogLevelWarn
			if opts.Verbose {
				level = logger.LogLevelDebug
			}
			logger.InitLoggerWithWriter(
				logger.NewConfig(level, logger.LogFormatText, cfg.ServiceName, cfg.Version, cfg.Environment, false),
				cmd.ErrOrStderr(),
			)
			slog.Debug(LogMsgCommandStarted, "command", cmd.CommandPath())
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, FlagVerbose, "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, FlagFormat, FormatText, "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewImportCSVCommand(opts))
	cmd.AddCommand(NewExportCSVCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewCheckBuildsCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewDoctorCommand(opts))
	cmd.AddCommand(NewHealthCommand(opts))

	return cmd
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// app is the store and services a command works with
type app struct {
	db       *database.DB
	services server.Services
}

// openApp opens the database and catalog the same way the server does
func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := bootstrap.OpenDatabase(ctx, cfg)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, ErrMsgOpenStore, err)
	}

	catalog, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, WrapExitError(ExitCommandError, ErrMsgOpenStore, err)
	}

	repos := bootstrap.InitializeRepositories(db)
	slog.Debug(LogMsgStoreOpened, "db_path", cfg.DBPath, "equipment_path", cfg.EquipmentPath)
	return &app{db: db, services: bootstrap.InitializeServices(cfg, repos, catalog)}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
}
