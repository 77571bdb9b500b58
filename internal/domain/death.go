package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Death records equipment lost when a character died
type Death struct {
	ID          int64           `json:"id"`
	Date        Date            `json:"date"`
	Character   string          `json:"character"`
	ValueLost   decimal.Decimal `json:"value_lost"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate performs presence checks
func (d *Death) Validate() error {
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(d.Character) == "" {
		return fmt.Errorf("%w: character is required", ErrInvalidInput)
	}
	return nil
}
