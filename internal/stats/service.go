package stats

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/repository"
)

// Service defines the interface for dashboard stats
type Service interface {
	GetSummary(ctx context.Context, period string) (*domain.StatsSummary, error)
	Characters(ctx context.Context) []string
}

// service implements the Service interface
type service struct {
	solo   repository.SoloHunt
	group  repository.GroupHunt
	deaths repository.Death
	roster []string
	now    func() time.Time
}

// NewService creates a new stats service. roster lists the characters that
// always appear in breakdowns and selection lists, in display order.
func NewService(solo repository.SoloHunt, group repository.GroupHunt, deaths repository.Death, roster []string) Service {
	return &service{
		solo:   solo,
		group:  group,
		deaths: deaths,
		roster: slices.Clone(roster),
		now:    time.Now,
	}
}

// GetSummary aggregates every record dated inside period. Unknown periods
// fall back to daily.
func (s *service) GetSummary(ctx context.Context, period string) (*domain.StatsSummary, error) {
	log := logger.FromContext(ctx)

	if !isKnownPeriod(period) {
		log.Debug(LogMsgUnknownPeriod, "period", period)
		period = domain.PeriodDaily
	}
	start, end := getPeriodRange(period, s.now())

	soloHunts, err := s.solo.ListSoloHunts(ctx)
	if err != nil {
		log.Error(LogMsgFailedToBuildSummary, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgListSoloHuntsFailed, err)
	}
	groupHunts, err := s.group.ListGroupHunts(ctx)
	if err != nil {
		log.Error(LogMsgFailedToBuildSummary, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgListGroupHuntsFailed, err)
	}
	deaths, err := s.deaths.ListDeaths(ctx)
	if err != nil {
		log.Error(LogMsgFailedToBuildSummary, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgListDeathsFailed, err)
	}

	agg := newAggregator(s.roster)
	for _, h := range soloHunts {
		if inRange(h.Date, start, end) {
			agg.addSolo(h)
		}
	}
	for _, g := range groupHunts {
		if inRange(g.Date, start, end) {
			agg.addGroup(g)
		}
	}
	for _, d := range deaths {
		if inRange(d.Date, start, end) {
			agg.addDeath(d)
		}
	}

	summary := agg.summary()
	summary.Period = period
	summary.StartDate = start
	summary.EndDate = end
	if period == domain.PeriodAll {
		summary.StartDate, summary.EndDate = agg.first, agg.last
	}

	log.Debug(LogMsgRetrievedSummary, "period", period,
		"solo_hunts", summary.SoloHuntCount, "group_hunts", summary.GroupHuntCount, "deaths", summary.DeathCount)
	return summary, nil
}

// Characters returns the roster followed by any other character found in the
// records, the extras sorted by name. Store failures fall back to the roster.
func (s *service) Characters(ctx context.Context) []string {
	names := slices.Clone(s.roster)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}

	var extra []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			extra = append(extra, name)
		}
	}

	if hunts, err := s.solo.ListSoloHunts(ctx); err == nil {
		for _, h := range hunts {
			add(h.Character)
		}
	}
	if hunts, err := s.group.ListGroupHunts(ctx); err == nil {
		for _, g := range hunts {
			for _, p := range g.Participants() {
				add(p)
			}
		}
	}
	if deaths, err := s.deaths.ListDeaths(ctx); err == nil {
		for _, d := range deaths {
			add(d.Character)
		}
	}

	slices.Sort(extra)
	if names == nil {
		names = []string{}
	}
	return append(names, extra...)
}

func isKnownPeriod(period string) bool {
	switch period {
	case domain.PeriodDaily, domain.PeriodWeekly, domain.PeriodMonthly, domain.PeriodYearly, domain.PeriodAll:
		return true
	}
	return false
}

// getPeriodRange calculates the inclusive first and last day for a period.
// The all-time period is unbounded and returns zero dates.
func getPeriodRange(period string, now time.Time) (start, end domain.Date) {
	if period == domain.PeriodAll {
		return domain.Date{}, domain.Date{}
	}
	end = domain.DateOf(now)

	switch period {
	case domain.PeriodWeekly:
		start = domain.DateOf(end.AddDate(0, 0, -7))
	case domain.PeriodMonthly:
		start = domain.DateOf(end.AddDate(0, -1, 0))
	case domain.PeriodYearly:
		start = domain.DateOf(end.AddDate(-1, 0, 0))
	default:
		start = end
	}

	return start, end
}

// inRange reports whether d lies within [start, end]. A zero bound is open.
func inRange(d, start, end domain.Date) bool {
	if !start.IsZero() && d.Before(start) {
		return false
	}
	return end.IsZero() || !end.Before(d)
}

// aggregator accumulates totals, the per-character breakdown and daily counts
type aggregator struct {
	totals     domain.StatsSummary
	characters map[string]*domain.CharacterStats
	order      []string
	days       map[domain.Date]*domain.ActivityDay
	first      domain.Date
	last       domain.Date
}

func newAggregator(roster []string) *aggregator {
	a := &aggregator{
		characters: make(map[string]*domain.CharacterStats),
		days:       make(map[domain.Date]*domain.ActivityDay),
	}
	for _, name := range roster {
		a.character(name)
	}
	return a
}

func (a *aggregator) character(name string) *domain.CharacterStats {
	if cs, ok := a.characters[name]; ok {
		return cs
	}
	cs := &domain.CharacterStats{Character: name}
	a.characters[name] = cs
	a.order = append(a.order, name)
	return cs
}

func (a *aggregator) day(d domain.Date) *domain.ActivityDay {
	if ad, ok := a.days[d]; ok {
		return ad
	}
	ad := &domain.ActivityDay{Date: d}
	a.days[d] = ad
	if a.first.IsZero() || d.Before(a.first) {
		a.first = d
	}
	if a.last.IsZero() || a.last.Before(d) {
		a.last = d
	}
	return ad
}

func (a *aggregator) addSolo(h domain.SoloHunt) {
	a.totals.SoloHuntCount++
	a.totals.SoloProfit = a.totals.SoloProfit.Add(h.ItemProfit)
	a.day(h.Date).SoloHunts++

	if h.Character == "" {
		return
	}
	cs := a.character(h.Character)
	cs.SoloHunts++
	cs.SoloProfit = cs.SoloProfit.Add(h.ItemProfit)
}

// addGroup counts every group hunt, but only hunts with participants add to
// the value totals since the value cannot be split otherwise.
func (a *aggregator) addGroup(g domain.GroupHunt) {
	a.totals.GroupHuntCount++
	a.day(g.Date).GroupHunts++

	share, ok := g.PerPersonValue()
	if !ok {
		return
	}
	a.totals.GroupValue = a.totals.GroupValue.Add(g.TotalValue)
	for _, p := range g.Participants() {
		cs := a.character(p)
		cs.GroupHunts++
		cs.GroupShare = cs.GroupShare.Add(share)
	}
}

func (a *aggregator) addDeath(d domain.Death) {
	a.totals.DeathCount++
	a.totals.Losses = a.totals.Losses.Add(d.ValueLost)
	a.day(d.Date).Deaths++

	if d.Character == "" {
		return
	}
	cs := a.character(d.Character)
	cs.Deaths++
	cs.Losses = cs.Losses.Add(d.ValueLost)
}

func (a *aggregator) summary() *domain.StatsSummary {
	out := a.totals
	out.Net = out.SoloProfit.Add(out.GroupValue).Sub(out.Losses)

	out.Characters = make([]domain.CharacterStats, 0, len(a.order))
	for _, name := range a.order {
		cs := *a.characters[name]
		cs.Net = cs.SoloProfit.Add(cs.GroupShare).Sub(cs.Losses)
		out.Characters = append(out.Characters, cs)
	}

	out.Recent = make([]domain.ActivityDay, 0, len(a.days))
	for _, ad := range a.days {
		out.Recent = append(out.Recent, *ad)
	}
	slices.SortFunc(out.Recent, func(x, y domain.ActivityDay) int {
		return x.Date.Compare(y.Date.Time)
	})
	if len(out.Recent) > RecentActivityDays {
		out.Recent = out.Recent[len(out.Recent)-RecentActivityDays:]
	}
	return &out
}
