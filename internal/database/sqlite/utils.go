package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// storeError wraps a driver error so callers can match domain.ErrStoreFailure
func storeError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreFailure, msg, err)
}

// nullString stores blank optional text as NULL
func nullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// parseTimestamp converts a created_at value into time.Time. The driver hands
// back either a time.Time or the raw CURRENT_TIMESTAMP text depending on how
// the column was declared.
func parseTimestamp(src any) time.Time {
	switch v := src.(type) {
	case time.Time:
		return v.UTC()
	case string:
		return parseTimestampText(v)
	case []byte:
		return parseTimestampText(string(v))
	default:
		return time.Time{}
	}
}

func parseTimestampText(s string) time.Time {
	for _, layout := range []string{sqliteTimestampLayout, time.RFC3339Nano, domain.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
