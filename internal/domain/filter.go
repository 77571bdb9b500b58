package domain

import "strings"

// Filter sentinels used by selection lists; both mean "no filter"
const (
	FilterAll       = "Todos"
	FilterAllFemale = "Todas"
)

// NormalizeFilter maps the "all" sentinels to the empty string
func NormalizeFilter(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, FilterAll) || strings.EqualFold(value, FilterAllFemale) {
		return ""
	}
	return value
}

// SoloHuntFilter narrows a solo hunt listing. Zero fields match everything.
type SoloHuntFilter struct {
	Date      Date
	Character string
	HuntType  HuntType
}

// Matches reports whether h passes the filter
func (f SoloHuntFilter) Matches(h SoloHunt) bool {
	if !f.Date.IsZero() && !f.Date.Equal(h.Date) {
		return false
	}
	if f.Character != "" && f.Character != h.Character {
		return false
	}
	if f.HuntType != "" && f.HuntType != h.HuntType {
		return false
	}
	return true
}

// GroupHuntFilter narrows a group hunt listing. Zero fields match everything.
type GroupHuntFilter struct {
	Date         Date
	Character    string
	MinGroupSize int
}

// Matches reports whether g passes the filter
func (f GroupHuntFilter) Matches(g GroupHunt) bool {
	if !f.Date.IsZero() && !f.Date.Equal(g.Date) {
		return false
	}
	if f.Character != "" && !g.HasParticipant(f.Character) {
		return false
	}
	if f.MinGroupSize > 0 && g.ParticipantCount() < f.MinGroupSize {
		return false
	}
	return true
}

// DeathFilter narrows a death listing. Zero fields match everything.
type DeathFilter struct {
	Date      Date
	Character string
}

// Matches reports whether d passes the filter
func (f DeathFilter) Matches(d Death) bool {
	if !f.Date.IsZero() && !f.Date.Equal(d.Date) {
		return false
	}
	if f.Character != "" && f.Character != d.Character {
		return false
	}
	return true
}

// BuildFilter narrows a build listing. Zero fields match everything.
type BuildFilter struct {
	ContentType ContentType
	Character   string
}

// Matches reports whether b passes the filter
func (f BuildFilter) Matches(b Build) bool {
	if f.ContentType != "" && f.ContentType != b.ContentType {
		return false
	}
	if f.Character != "" && f.Character != b.Character {
		return false
	}
	return true
}
