package cli

import (
	"github.com/spf13/cobra"

	"github.com/osse101/AlbionStats_Go/internal/legacycsv"
)

// InitResult reports what init prepared
type InitResult struct {
	Database   string   `json:"database"`
	Catalog    string   `json:"catalog"`
	CSVDir     string   `json:"csv_dir"`
	CreatedCSV []string `json:"created_csv"`
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the database schema, seed the catalog and create the CSV files",
		Long: `Prepare a fresh installation.

Creates or upgrades the SQLite schema, writes the default equipment catalog if
none exists and creates the legacy CSV files with their headers. Existing
files are left untouched, so init is safe to run again.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}

	return cmd
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := opts.Config
	formatter := newFormatter(opts, cmd)

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	created, err := legacycsv.InitFiles(ctx, cfg.CSVDir)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrMsgInitFiles, err, nil)
	}

	result := InitResult{
		Database:   cfg.DBPath,
		Catalog:    cfg.EquipmentPath,
		CSVDir:     cfg.CSVDir,
		CreatedCSV: created,
	}
	if result.CreatedCSV == nil {
		result.CreatedCSV = []string{}
	}

	return formatter.Result(result, func(p *Printer) {
		p.Success("Database ready: %s", result.Database)
		p.Success("Equipment catalog: %s", result.Catalog)
		if len(created) == 0 {
			p.Info("CSV files already present in %s", result.CSVDir)
			return
		}
		for _, path := range created {
			p.Success("Created %s", path)
		}
	})
}
