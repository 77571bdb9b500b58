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
	insertSoloHuntSQL = `INSERT INTO solo_hunts (date, character, hunt_type, item_profit, description)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, created_at`
	listSoloHuntsSQL = `SELECT id, date, character, hunt_type, item_profit, description, created_at
		FROM solo_hunts
		ORDER BY date DESC, id DESC`
	deleteSoloHuntSQL = `DELETE FROM solo_hunts WHERE id = ?`

	insertGroupHuntSQL = `INSERT INTO group_hunts (date, characters, total_value, notes)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at`
	listGroupHuntsSQL = `SELECT id, date, characters, total_value, notes, created_at
		FROM group_hunts
		ORDER BY date DESC, id DESC`
	deleteGroupHuntSQL = `DELETE FROM group_hunts WHERE id = ?`
)

// SoloHuntRepository implements repository.SoloHunt for SQLite
type SoloHuntRepository struct {
	db *database.DB
}

// NewSoloHuntRepository creates a new SoloHuntRepository
func NewSoloHuntRepository(db *database.DB) repository.SoloHunt {
	return &SoloHuntRepository{db: db}
}

// CreateSoloHunt inserts the hunt and fills in its id and created_at
func (r *SoloHuntRepository) CreateSoloHunt(ctx context.Context, hunt *domain.SoloHunt) error {
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var createdAt any
		err := conn.QueryRowContext(ctx, insertSoloHuntSQL,
			hunt.Date, hunt.Character, string(hunt.HuntType), hunt.ItemProfit, nullString(hunt.Description),
		).Scan(&hunt.ID, &createdAt)
		if err != nil {
			return err
		}
		hunt.CreatedAt = parseTimestamp(createdAt)
		return nil
	})
	if err != nil {
		return storeError(ErrMsgFailedToInsertSoloHunt, err)
	}
	return nil
}

// ListSoloHunts returns every solo hunt, newest first
func (r *SoloHuntRepository) ListSoloHunts(ctx context.Context) ([]domain.SoloHunt, error) {
	hunts := []domain.SoloHunt{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, listSoloHuntsSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				h           domain.SoloHunt
				huntType    string
				description sql.NullString
				createdAt   any
			)
			if err := rows.Scan(&h.ID, &h.Date, &h.Character, &huntType, &h.ItemProfit, &description, &createdAt); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
			}
			h.HuntType = domain.HuntType(huntType)
			h.Description = description.String
			h.CreatedAt = parseTimestamp(createdAt)
			hunts = append(hunts, h)
		}
		return rows.Err()
	})
	if err != nil {
		return []domain.SoloHunt{}, storeError(ErrMsgFailedToListSoloHunts, err)
	}
	return hunts, nil
}

// DeleteSoloHunt removes the hunt with id. A missing id is not an error.
func (r *SoloHuntRepository) DeleteSoloHunt(ctx context.Context, id int64) error {
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, deleteSoloHuntSQL, id)
		return err
	})
	if err != nil {
		return storeError(ErrMsgFailedToDeleteSoloHunt, err)
	}
	return nil
}

// GroupHuntRepository implements repository.GroupHunt for SQLite
type GroupHuntRepository struct {
	db *database.DB
}

// NewGroupHuntRepository creates a new GroupHuntRepository
func NewGroupHuntRepository(db *database.DB) repository.GroupHunt {
	return &GroupHuntRepository{db: db}
}

// CreateGroupHunt inserts the hunt and fills in its id and created_at
func (r *GroupHuntRepository) CreateGroupHunt(ctx context.Context, hunt *domain.GroupHunt) error {
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var createdAt any
		err := conn.QueryRowContext(ctx, insertGroupHuntSQL,
			hunt.Date, hunt.Characters, hunt.TotalValue, nullString(hunt.Notes),
		).Scan(&hunt.ID, &createdAt)
		if err != nil {
			return err
		}
		hunt.CreatedAt = parseTimestamp(createdAt)
		return nil
	})
	if err != nil {
		return storeError(ErrMsgFailedToInsertGroupHunt, err)
	}
	return nil
}

// ListGroupHunts returns every group hunt, newest first
func (r *GroupHuntRepository) ListGroupHunts(ctx context.Context) ([]domain.GroupHunt, error) {
	hunts := []domain.GroupHunt{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, listGroupHuntsSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				h         domain.GroupHunt
				notes     sql.NullString
				createdAt any
			)
			if err := rows.Scan(&h.ID, &h.Date, &h.Characters, &h.TotalValue, &notes, &createdAt); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
			}
			h.Notes = notes.String
			h.CreatedAt = parseTimestamp(createdAt)
			hunts = append(hunts, h)
		}
		return rows.Err()
	})
	if err != nil {
		return []domain.GroupHunt{}, storeError(ErrMsgFailedToListGroupHunts, err)
	}
	return hunts, nil
}

// DeleteGroupHunt removes the hunt with id. A missing id is not an error.
func (r *GroupHuntRepository) DeleteGroupHunt(ctx context.Context, id int64) error {
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, deleteGroupHuntSQL, id)
		return err
	})
	if err != nil {
		return storeError(ErrMsgFailedToDeleteGroupHunt, err)
	}
	return nil
}
