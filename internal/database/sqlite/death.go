package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/repository"
)

const (
	insertDeathSQL = `INSERT INTO deaths (date, character, value_lost, description)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at`
	listDeathsSQL = `SELECT id, date, character, value_lost, description, created_at
		FROM deaths
		ORDER BY date DESC, id DESC`
	deleteDeathSQL = `DELETE FROM deaths WHERE id = ?`
)

// DeathRepository implements repository.Death for SQLite
type DeathRepository struct {
	db *database.DB
}

// NewDeathRepository creates a new DeathRepository
func NewDeathRepository(db *database.DB) repository.Death {
	return &DeathRepository{db: db}
}

// CreateDeath inserts the death and fills in its id and created_at
func (r *DeathRepository) CreateDeath(ctx context.Context, death *domain.Death) error {
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var createdAt any
		err := conn.QueryRowContext(ctx, insertDeathSQL,
			death.Date, death.Character, death.ValueLost, nullString(death.Description),
		).Scan(&death.ID, &createdAt)
		if err != nil {
			return err
		}
		death.CreatedAt = parseTimestamp(createdAt)
		return nil
	})
	if err != nil {
		return storeError(ErrMsgFailedToInsertDeath, err)
	}
	return nil
}

// ListDeaths returns every death, newest first
func (r *DeathRepository) ListDeaths(ctx context.Context) ([]domain.Death, error) {
	deaths := []domain.Death{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, listDeathsSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				d           domain.Death
				description sql.NullString
				createdAt   any
			)
			if err := rows.Scan(&d.ID, &d.Date, &d.Character, &d.ValueLost, &description, &createdAt); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
			}
			d.Description = description.String
			d.CreatedAt = parseTimestamp(createdAt)
			deaths = append(deaths, d)
		}
		return rows.Err()
	})
	if err != nil {
		return []domain.Death{}, storeError(ErrMsgFailedToListDeaths, err)
	}
	return deaths, nil
}

// DeleteDeath removes the death with id. A missing id is not an error.
func (r *DeathRepository) DeleteDeath(ctx context.Context, id int64) error {
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, deleteDeathSQL, id)
		return err
	})
	if err != nil {
		return storeError(ErrMsgFailedToDeleteDeath, err)
	}
	return nil
}
