package cli

import (
	"github.com/spf13/cobra"

	"github.com/osse101/AlbionStats_Go/internal/legacycsv"
)

// ImportSummary is the outcome of import-csv
type ImportSummary struct {
	Dir        string   `json:"dir"`
	SoloHunts  int      `json:"solo_hunts"`
	GroupHunts int      `json:"group_hunts"`
	Deaths     int      `json:"deaths"`
	Duplicates int      `json:"duplicates"`
	Rejected   []string `json:"rejected"`
}

// ExportSummary is the outcome of export-csv
type ExportSummary struct {
	Dir   string   `json:"dir"`
	Files []string `json:"files"`
}

// NewImportCSVCommand creates the import-csv command.
func NewImportCSVCommand(rootOpts *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import-csv",
		Short: "Import the legacy CSV files into the database",
		Long: `Read hunts_solo.csv, hunts_grupo.csv and mortes.csv and store every row.

Rows go through the same validation as the API. Invalid rows are listed and
skipped; the command then exits with status 1. Missing files are ignored.

A row identical to a record already in the database is skipped, so running
import-csv again, or importing files written by export-csv, adds nothing new.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCSV(rootOpts, dir, cmd)
		},
	}

	cmd.Flags().StringVar(&dir, FlagDir, "", "directory holding the CSV files (default CSV_DIR)")

	return cmd
}

func runImportCSV(opts *RootOptions, dir string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts, cmd)
	if dir == "" {
		dir = opts.Config.CSVDir
	}

	a, err := openApp(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	importer := legacycsv.NewImporter(a.services.Hunts, a.services.Deaths)
	result, err := importer.Import(ctx, dir)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrMsgImportFailed, err, nil)
	}

	summary := ImportSummary{
		Dir:        dir,
		SoloHunts:  result.SoloHunts,
		GroupHunts: result.GroupHunts,
		Deaths:     result.Deaths,
		Duplicates: result.Duplicates,
		Rejected:   make([]string, len(result.Rejected)),
	}
	for i, rowErr := range result.Rejected {
		summary.Rejected[i] = rowErr.Error()
	}

	if len(summary.Rejected) > 0 {
		if opts.Format == FormatText {
			printImport(NewPrinter(cmd.OutOrStdout()), summary)
		}
		return formatter.Fail(ExitFailure, ErrMsgRowsRejected, nil, summary)
	}
	return formatter.Result(summary, func(p *Printer) { printImport(p, summary) })
}

func printImport(p *Printer, s ImportSummary) {
	p.Success("Imported from %s: %d solo hunts, %d group hunts, %d deaths", s.Dir, s.SoloHunts, s.GroupHunts, s.Deaths)
	if s.Duplicates > 0 {
		p.Info("Skipped %d rows already in the database", s.Duplicates)
	}
	for _, rejected := range s.Rejected {
		p.Error("%s", rejected)
	}
}

// NewExportCSVCommand creates the export-csv command.
func NewExportCSVCommand(rootOpts *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export-csv",
		Short: "Export the database tables to the legacy CSV files",
		Long: `Write every solo hunt, group hunt and death to the legacy CSV files,
oldest first. Existing files in the directory are replaced.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportCSV(rootOpts, dir, cmd)
		},
	}

	cmd.Flags().StringVar(&dir, FlagDir, "", "destination directory (default CSV_DIR)")

	return cmd
}

func runExportCSV(opts *RootOptions, dir string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts, cmd)
	if dir == "" {
		dir = opts.Config.CSVDir
	}

	a, err := openApp(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	exporter := legacycsv.NewExporter(a.services.Hunts, a.services.Deaths)
	files, err := exporter.ExportDir(ctx, dir)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrMsgExportFailed, err, nil)
	}

	summary := ExportSummary{Dir: dir, Files: files}
	return formatter.Result(summary, func(p *Printer) {
		for _, path := range summary.Files {
			p.Success("Wrote %s", path)
		}
	})
}
