package domain

import "github.com/shopspring/decimal"

// Supported time periods for dashboard summaries
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
	PeriodAll     = "all"
)

// StatsSummary aggregates every record type over a period
type StatsSummary struct {
	Period         string           `json:"period"`
	StartDate      Date             `json:"start_date"`
	EndDate        Date             `json:"end_date"`
	SoloHuntCount  int              `json:"solo_hunt_count"`
	GroupHuntCount int              `json:"group_hunt_count"`
	DeathCount     int              `json:"death_count"`
	SoloProfit     decimal.Decimal  `json:"solo_profit"`
	GroupValue     decimal.Decimal  `json:"group_value"`
	Losses         decimal.Decimal  `json:"losses"`
	Net            decimal.Decimal  `json:"net"`
	Characters     []CharacterStats `json:"characters"`
	Recent         []ActivityDay    `json:"recent"`
}

// CharacterStats is one row of the per-character breakdown. GroupShare is the
// character's per-person share of every group hunt they joined.
type CharacterStats struct {
	Character  string          `json:"character"`
	SoloHunts  int             `json:"solo_hunts"`
	GroupHunts int             `json:"group_hunts"`
	Deaths     int             `json:"deaths"`
	SoloProfit decimal.Decimal `json:"solo_profit"`
	GroupShare decimal.Decimal `json:"group_share"`
	Losses     decimal.Decimal `json:"losses"`
	Net        decimal.Decimal `json:"net"`
}

// ActivityDay counts records per day for the recent-activity chart
type ActivityDay struct {
	Date       Date `json:"date"`
	SoloHunts  int  `json:"solo_hunts"`
	GroupHunts int  `json:"group_hunts"`
	Deaths     int  `json:"deaths"`
}
