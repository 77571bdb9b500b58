package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HuntType identifies the kind of content a solo hunt was run in
type HuntType string

const (
	HuntTypeSolo      HuntType = "Solo"
	HuntTypeCorrupted HuntType = "Corrupted"
	HuntTypeHCE       HuntType = "HCE"
)

// HuntTypes lists the valid hunt types in display order
var HuntTypes = []HuntType{HuntTypeSolo, HuntTypeCorrupted, HuntTypeHCE}

// IsValid reports whether t is one of HuntTypes
func (t HuntType) IsValid() bool {
	for _, valid := range HuntTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// SoloHunt is a single-character play session
type SoloHunt struct {
	ID          int64           `json:"id"`
	Date        Date            `json:"date"`
	Character   string          `json:"character"`
	HuntType    HuntType        `json:"hunt_type"`
	ItemProfit  decimal.Decimal `json:"item_profit"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate performs presence checks
func (h *SoloHunt) Validate() error {
	if h.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(h.Character) == "" {
		return fmt.Errorf("%w: character is required", ErrInvalidInput)
	}
	if !h.HuntType.IsValid() {
		return fmt.Errorf("%w: unknown hunt type %q", ErrInvalidInput, h.HuntType)
	}
	return nil
}

// CharacterSeparator delimits names in a group hunt's characters column
const CharacterSeparator = ","

// GroupHunt is a session shared by several characters. Characters holds the
// participant names as a single delimited string.
type GroupHunt struct {
	ID         int64           `json:"id"`
	Date       Date            `json:"date"`
	Characters string          `json:"characters"`
	TotalValue decimal.Decimal `json:"total_value"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SplitCharacters parses a delimited roster, dropping blanks
func SplitCharacters(s string) []string {
	parts := strings.Split(s, CharacterSeparator)
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// JoinCharacters serializes names in order. A name containing the separator
// would split into several participants, so it is rejected.
func JoinCharacters(names []string) (string, error) {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if strings.Contains(n, CharacterSeparator) {
			return "", fmt.Errorf("%w: character %q must not contain %q", ErrInvalidInput, n, CharacterSeparator)
		}
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	return strings.Join(cleaned, CharacterSeparator+" "), nil
}

// Participants returns the ordered participant names
func (g GroupHunt) Participants() []string {
	return SplitCharacters(g.Characters)
}

// ParticipantCount is the number of non-empty names in Characters
func (g GroupHunt) ParticipantCount() int {
	return len(g.Participants())
}

// PerPersonValue splits TotalValue evenly. ok is false when there are no
// participants.
func (g GroupHunt) PerPersonValue() (value decimal.Decimal, ok bool) {
	n := g.ParticipantCount()
	if n < 1 {
		return decimal.Zero, false
	}
	return g.TotalValue.Div(decimal.NewFromInt(int64(n))), true
}

// HasParticipant reports whether name took part in the hunt
func (g GroupHunt) HasParticipant(name string) bool {
	for _, p := range g.Participants() {
		if p == name {
			return true
		}
	}
	return false
}

// Validate performs presence checks
func (g *GroupHunt) Validate() error {
	if g.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if g.ParticipantCount() < 1 {
		return fmt.Errorf("%w: at least one character is required", ErrInvalidInput)
	}
	return nil
}
