package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/osse101/AlbionStats_Go/internal/bootstrap"
	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/web"
)

// CategoryCount is one row of catalog list without a category
type CategoryCount struct {
	Category domain.EquipmentCategory `json:"category"`
	Items    int                      `json:"items"`
}

// Resolution is the catalog answer for one display name
type Resolution struct {
	Name    string `json:"name"`
	ID      string `json:"id,omitempty"`
	Found   bool   `json:"found"`
	IconURL string `json:"icon_url,omitempty"`
}

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the equipment catalog",
	}

	cmd.AddCommand(newCatalogListCommand(rootOpts))
	cmd.AddCommand(newCatalogResolveCommand(rootOpts))

	return cmd
}

func newCatalogListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List catalog categories, or the items of one category",
		Long: fmt.Sprintf(`Without a category, list every category with its item count.
With a category, list its items in file order.

Categories: %v`, domain.EquipmentCategories),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return runCatalogList(rootOpts, category, cmd)
		},
	}
}

func runCatalogList(opts *RootOptions, category string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts, cmd)

	if category != "" && !slices.Contains(domain.EquipmentCategories, domain.EquipmentCategory(category)) {
		return formatter.Fail(ExitCommandError, fmt.Sprintf("%s %q", ErrMsgUnknownCategory, category), nil, nil)
	}

	catalog, err := bootstrap.LoadCatalog(ctx, opts.Config)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrMsgCatalogUnavailable, err, nil)
	}
	doc, err := catalog.Load(ctx)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrMsgCatalogUnavailable, err, nil)
	}

	if category != "" {
		entries := doc[domain.EquipmentCategory(category)]
		if entries == nil {
			entries = []domain.EquipmentEntry{}
		}
		return formatter.Result(entries, func(p *Printer) {
			for _, e := range entries {
				p.Line("%-40s %s", e.Name, e.ID)
			}
		})
	}

	counts := make([]CategoryCount, 0, len(domain.EquipmentCategories))
	for _, c := range catalog.Categories() {
		counts = append(counts, CategoryCount{Category: c, Items: len(doc[c])})
	}
	return formatter.Result(counts, func(p *Printer) {
		p.Info("%s", catalog.Path())
		for _, c := range counts {
			p.Line("%-10s %d", c.Category, c.Items)
		}
	})
}

func newCatalogResolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Resolve display names to catalog item ids",
		Long: `Resolve each display name to its item id and icon URL.

Names are matched exactly. Exits with status 1 when any name is unknown.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogResolve(rootOpts, args, cmd)
		},
	}
}

func runCatalogResolve(opts *RootOptions, names []string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts, cmd)

	catalog, err := bootstrap.LoadCatalog(ctx, opts.Config)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrMsgCatalogUnavailable, err, nil)
	}
	icons := web.NewFormatter(opts.Config.IconBaseURL, opts.Config.IconQuality)

	resolutions := make([]Resolution, len(names))
	missing := 0
	for i, name := range names {
		id, ok := catalog.ResolveItemID(ctx, name)
		resolutions[i] = Resolution{Name: name, ID: id, Found: ok, IconURL: icons.IconURL(id)}
		if !ok {
			missing++
		}
	}

	render := func(p *Printer) {
		for _, r := range resolutions {
			if r.Found {
				p.Success("%s → %s", r.Name, r.ID)
				continue
			}
			p.Error("%s: not in catalog", r.Name)
		}
	}

	if missing > 0 {
		if opts.Format == FormatText {
			render(NewPrinter(cmd.OutOrStdout()))
		}
		return formatter.Fail(ExitFailure, ErrMsgUnresolvedNames, nil, resolutions)
	}
	return formatter.Result(resolutions, render)
}
