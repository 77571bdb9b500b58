package cli

import (
	"github.com/spf13/cobra"

	"github.com/osse101/AlbionStats_Go/internal/build"
)

// NewCheckBuildsCommand creates the check-builds command.
func NewCheckBuildsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-builds",
		Short: "Report builds that name equipment missing from the catalog",
		Long: `Check every stored build slot against its catalog category.

Builds saved before a catalog edit can reference items that no longer exist.
Each mismatch is listed with its closest catalog names. Exits with status 1
when any build has a mismatch.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckBuilds(rootOpts, cmd)
		},
	}

	return cmd
}

func runCheckBuilds(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts, cmd)

	a, err := openApp(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	audits, err := a.services.Builds.AuditBuilds(ctx)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrMsgAuditFailed, err, nil)
	}

	render := func(p *Printer) {
		if len(audits) == 0 {
			p.Success("All builds match the catalog")
			return
		}
		printAudits(p, audits)
	}

	if len(audits) > 0 {
		if opts.Format == FormatText {
			render(NewPrinter(cmd.OutOrStdout()))
		}
		return formatter.Fail(ExitFailure, ErrMsgOrphanedBuilds, nil, audits)
	}
	return formatter.Result(audits, render)
}

func printAudits(p *Printer, audits []build.Audit) {
	for _, a := range audits {
		p.Error("#%d %s", a.Build.ID, a.Build.Name)
		for _, m := range a.Mismatches {
			p.Line("    %s", m)
		}
	}
}
