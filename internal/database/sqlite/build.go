package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/repository"
)

const buildColumns = `id, name, content_type, primary_weapon, offhand, head, chest, boots, cape, potion, food, notes, character, created_at`

const (
	insertBuildSQL = `INSERT INTO builds (name, content_type, primary_weapon, offhand, head, chest, boots, cape, potion, food, notes, character)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at`
	getBuildSQL    = `SELECT ` + buildColumns + ` FROM builds WHERE id = ?`
	listBuildsSQL  = `SELECT ` + buildColumns + ` FROM builds ORDER BY content_type, name`
	updateBuildSQL = `UPDATE builds SET
		name = ?, content_type = ?, primary_weapon = ?, offhand = ?, head = ?, chest = ?,
		boots = ?, cape = ?, potion = ?, food = ?, notes = ?, character = ?
		WHERE id = ?`
	deleteBuildSQL = `DELETE FROM builds WHERE id = ?`
)

// BuildRepository implements repository.Build for SQLite
type BuildRepository struct {
	db *database.DB
}

// NewBuildRepository creates a new BuildRepository
func NewBuildRepository(db *database.DB) repository.Build {
	return &BuildRepository{db: db}
}

// buildArgs lists the writable columns in insert/update order
func buildArgs(b *domain.Build) []any {
	return []any{
		b.Name,
		string(b.ContentType),
		b.PrimaryWeapon,
		nullString(b.Offhand),
		nullString(b.Head),
		nullString(b.Chest),
		nullString(b.Boots),
		nullString(b.Cape),
		nullString(b.Potion),
		nullString(b.Food),
		nullString(b.Notes),
		nullString(b.Character),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuild(row rowScanner) (domain.Build, error) {
	var (
		b           domain.Build
		contentType string
		optional    [9]sql.NullString
		createdAt   any
	)
	err := row.Scan(&b.ID, &b.Name, &contentType, &b.PrimaryWeapon,
		&optional[0], &optional[1], &optional[2], &optional[3], &optional[4],
		&optional[5], &optional[6], &optional[7], &optional[8], &createdAt)
	if err != nil {
		return domain.Build{}, err
	}

	b.ContentType = domain.ContentType(contentType)
	b.Offhand = optional[0].String
	b.Head = optional[1].String
	b.Chest = optional[2].String
	b.Boots = optional[3].String
	b.Cape = optional[4].String
	b.Potion = optional[5].String
	b.Food = optional[6].String
	b.Notes = optional[7].String
	b.Character = optional[8].String
	b.CreatedAt = parseTimestamp(createdAt)
	return b, nil
}

// CreateBuild inserts the build and fills in its id and created_at
func (r *BuildRepository) CreateBuild(ctx context.Context, build *domain.Build) error {
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var createdAt any
		if err := conn.QueryRowContext(ctx, insertBuildSQL, buildArgs(build)...).Scan(&build.ID, &createdAt); err != nil {
			return err
		}
		build.CreatedAt = parseTimestamp(createdAt)
		return nil
	})
	if err != nil {
		return storeError(ErrMsgFailedToInsertBuild, err)
	}
	return nil
}

// GetBuild returns the build with id, or domain.ErrRecordNotFound
func (r *BuildRepository) GetBuild(ctx context.Context, id int64) (*domain.Build, error) {
	var build domain.Build
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		build, err = scanBuild(conn.QueryRowContext(ctx, getBuildSQL, id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: build %d", domain.ErrRecordNotFound, id)
	}
	if err != nil {
		return nil, storeError(ErrMsgFailedToGetBuild, err)
	}
	return &build, nil
}

// ListBuilds returns every build ordered by content type then name
func (r *BuildRepository) ListBuilds(ctx context.Context) ([]domain.Build, error) {
	builds := []domain.Build{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, listBuildsSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			b, err := scanBuild(rows)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
			}
			builds = append(builds, b)
		}
		return rows.Err()
	})
	if err != nil {
		return []domain.Build{}, storeError(ErrMsgFailedToListBuilds, err)
	}
	return builds, nil
}

// UpdateBuild overwrites every field of the build with id. Last write wins.
func (r *BuildRepository) UpdateBuild(ctx context.Context, id int64, build *domain.Build) error {
	var affected int64
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		args := append(buildArgs(build), id)
		res, err := conn.ExecContext(ctx, updateBuildSQL, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return storeError(ErrMsgFailedToUpdateBuild, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: build %d", domain.ErrRecordNotFound, id)
	}
	build.ID = id
	return nil
}

// DeleteBuild removes the build with id. A missing id is not an error.
func (r *BuildRepository) DeleteBuild(ctx context.Context, id int64) error {
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, deleteBuildSQL, id)
		return err
	})
	if err != nil {
		return storeError(ErrMsgFailedToDeleteBuild, err)
	}
	return nil
}
