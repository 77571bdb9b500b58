package cli

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/web"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard summary for a period",
		Long: `Print the same totals and per-character breakdown as the dashboard.

Periods: daily, weekly, monthly, yearly, all. Unknown periods fall back to daily.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, period, cmd)
		},
	}

	cmd.Flags().StringVarP(&period, FlagPeriod, "p", domain.PeriodDaily, "summary period")

	return cmd
}

func runStats(opts *RootOptions, period string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts, cmd)

	a, err := openApp(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	summary, err := a.services.Stats.GetSummary(ctx, period)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrMsgStatsFailed, err, nil)
	}

	f := web.NewFormatter(opts.Config.IconBaseURL, opts.Config.IconQuality)
	return formatter.Result(summary, func(p *Printer) {
		p.Header(summary.Period + " " + summary.StartDate.String() + " .. " + summary.EndDate.String())
		p.Line("Solo hunts:   %s (%s)", f.Count(summary.SoloHuntCount), f.Silver(summary.SoloProfit))
		p.Line("Group hunts:  %s (%s)", f.Count(summary.GroupHuntCount), f.Silver(summary.GroupValue))
		p.Line("Deaths:       %s (%s)", f.Count(summary.DeathCount), f.Silver(summary.Losses.Neg()))
		p.Line("Net:          %s", f.Silver(summary.Net))
		p.Line("")

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
		_, _ = tw.Write([]byte("Character\tSolo\tGroup\tDeaths\tNet\t\n"))
		for _, c := range summary.Characters {
			_, _ = tw.Write([]byte(c.Character + "\t" + f.Count(c.SoloHunts) + "\t" + f.Count(c.GroupHunts) +
				"\t" + f.Count(c.Deaths) + "\t" + f.Silver(c.Net) + "\t\n"))
		}
		_ = tw.Flush()
	})
}
