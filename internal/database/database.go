package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/osse101/AlbionStats_Go/internal/database/schema"
	"github.com/osse101/AlbionStats_Go/internal/logger"
)

// Pool interface for the readiness check
type Pool interface {
	Ping(ctx context.Context) error
}

// DB owns the SQLite file. Each logical operation borrows the single
// connection through WithConn and gives it back when done.
type DB struct {
	sqlDB *sql.DB
	path  string
}

// Open opens (creating if needed) the SQLite database at path
func Open(path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateDataDir, err)
		}
	}

	sqlDB, err := sql.Open(DriverName, dsn(cleanPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	sqlDB.SetMaxOpenConns(MaxOpenConnections)
	sqlDB.SetMaxIdleConns(MaxOpenConnections)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyOpenedDatabase, "path", cleanPath)
	return &DB{sqlDB: sqlDB, path: cleanPath}, nil
}

func dsn(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)",
		path, BusyTimeoutMillis)
}

// Path returns the database file path
func (d *DB) Path() string {
	return d.path
}

// Close releases the database handle
func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Ping verifies the database file is reachable
func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.sqlDB == nil {
		return errors.New(ErrMsgStoreNotConfigured)
	}
	return d.sqlDB.PingContext(ctx)
}

// WithConn scopes a connection to one logical operation
func (d *DB) WithConn(ctx context.Context, fn func(ctx context.Context, conn *sql.Conn) error) error {
	if d == nil || d.sqlDB == nil {
		return errors.New(ErrMsgStoreNotConfigured)
	}
	conn, err := d.sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAcquireConn, err)
	}
	defer conn.Close()

	return fn(ctx, conn)
}

// InitSchema creates every table that does not exist yet. Safe to call on
// every start.
func (d *DB) InitSchema(ctx context.Context) error {
	err := d.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, schema.SchemaSQL)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateSchema, err)
	}
	logger.FromContext(ctx).Debug(LogMsgSchemaInitialized, "tables", len(schema.Tables))
	return nil
}

// UpgradeSchema applies the additive column changes. A column that already
// exists is skipped; any other failure is returned.
func (d *DB) UpgradeSchema(ctx context.Context) error {
	log := logger.FromContext(ctx)

	return d.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		for _, upgrade := range schema.Upgrades {
			_, err := conn.ExecContext(ctx, upgrade.Statement())
			switch {
			case err == nil:
				log.Info(LogMsgColumnAdded, "table", upgrade.Table, "column", upgrade.Column)
			case schema.IsDuplicateColumn(err):
				log.Debug(LogMsgColumnAlreadyPresent, "table", upgrade.Table, "column", upgrade.Column)
			default:
				return fmt.Errorf("%s: %s.%s: %w", ErrMsgFailedToUpgradeSchema, upgrade.Table, upgrade.Column, err)
			}
		}
		return nil
	})
}

// Initialize runs InitSchema followed by UpgradeSchema
func (d *DB) Initialize(ctx context.Context) error {
	if err := d.InitSchema(ctx); err != nil {
		return err
	}
	return d.UpgradeSchema(ctx)
}
