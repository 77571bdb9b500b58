package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/osse101/AlbionStats_Go/internal/config"
	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/equipment"
	"github.com/osse101/AlbionStats_Go/internal/legacycsv"
)

// Check is one doctor finding
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// DoctorReport is everything doctor looked at
type DoctorReport struct {
	Checks   []Check  `json:"checks"`
	Warnings []string `json:"warnings"`
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration, database and catalog issues",
		Long: `Check the installation without changing it.

Reports configuration warnings, whether the database opens and answers, and
whether the equipment catalog loads. Exits with status 1 when a check fails.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(rootOpts, cmd)
		},
	}

	return cmd
}

func runDoctor(opts *RootOptions, cmd *cobra.Command) error {
	cfg := opts.Config
	formatter := newFormatter(opts, cmd)

	report := DoctorReport{
		Checks:   []Check{{Name: "config", OK: true, Detail: fmt.Sprintf("environment %s", cfg.Environment)}},
		Warnings: cfg.Warnings(),
	}
	if report.Warnings == nil {
		report.Warnings = []string{}
	}

	report.Checks = append(report.Checks, checkDatabase(cmd, cfg), checkCatalog(cmd, cfg), checkCSVFiles(cfg))

	render := func(p *Printer) {
		p.Header("Running Doctor...")
		for _, w := range report.Warnings {
			p.Warning("%s", w)
		}
		for _, c := range report.Checks {
			if c.OK {
				p.Success("%s: %s", c.Name, c.Detail)
			} else {
				p.Error("%s: %s", c.Name, c.Detail)
			}
		}
	}

	for _, c := range report.Checks {
		if !c.OK {
			if opts.Format == FormatText {
				render(NewPrinter(cmd.OutOrStdout()))
			}
			return formatter.Fail(ExitFailure, ErrMsgDoctorIssues, nil, report)
		}
	}

	return formatter.Result(report, func(p *Printer) {
		render(p)
		p.Success("All systems operational!")
	})
}

func checkDatabase(cmd *cobra.Command, cfg *config.Config) Check {
	check := Check{Name: "database"}
	if _, err := os.Stat(cfg.DBPath); errors.Is(err, fs.ErrNotExist) {
		check.Detail = fmt.Sprintf("%s does not exist (run albionctl init)", cfg.DBPath)
		return check
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	defer db.Close()

	if err := db.Ping(cmd.Context()); err != nil {
		check.Detail = err.Error()
		return check
	}
	check.OK = true
	check.Detail = db.Path()
	return check
}

func checkCatalog(cmd *cobra.Command, cfg *config.Config) Check {
	check := Check{Name: "catalog"}
	catalog, err := equipment.NewCatalog(cfg.EquipmentPath)
	if err != nil {
		check.Detail = err.Error()
		return check
	}

	doc, err := catalog.Load(cmd.Context())
	if err != nil {
		check.Detail = err.Error()
		return check
	}

	items := 0
	for _, entries := range doc {
		items += len(entries)
	}
	check.OK = true
	check.Detail = fmt.Sprintf("%s (%d items)", catalog.Path(), items)
	return check
}

// checkCSVFiles only reports which legacy files are present. Their absence
// is not a failure.
func checkCSVFiles(cfg *config.Config) Check {
	present := 0
	for _, name := range legacycsv.Files {
		if _, err := os.Stat(filepath.Join(cfg.CSVDir, name)); err == nil {
			present++
		}
	}
	return Check{
		Name:   "csv",
		OK:     true,
		Detail: fmt.Sprintf("%d of %d legacy files in %s", present, len(legacycsv.Files), cfg.CSVDir),
	}
}
