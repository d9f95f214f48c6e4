// Package sqlite implements a SQLite-backed storage.Repository using
// database/sql. It performs batched multi-value INSERTs inside a
// transaction; SQLite has no dedicated bulk-load API like Postgres COPY, but
// transactions keep performance acceptable for rowset-sized volumes.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"eveapi/internal/storage"
)

func init() {
	storage.Register("sqlite", func(ctx context.Context, cfg storage.Config) (storage.Repository, func(), error) {
		return NewRepository(ctx, cfg)
	})
}

// insertBatch caps how many rows go into one multi-value INSERT. SQLite
// limits bound parameters per statement; rowset widths are small, so this
// stays comfortably inside the default limit.
const insertBatch = 200

// Repository is a SQLite-backed implementation of storage.Repository.
type Repository struct {
	db  *sql.DB
	cfg storage.Config
}

// NewRepository opens a SQLite connection using the provided DSN and returns
// a Repository plus a close function for cleanup.
//
// The DSN is passed directly to database/sql, for example:
//
//	"file:eve.db?cache=shared"
//	"eve.db"
func NewRepository(ctx context.Context, cfg storage.Config) (*Repository, func(), error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, nil, fmt.Errorf("sqlite: DSN must not be empty")
	}

	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite: open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	closeFn := func() { db.Close() }
	return &Repository{db: db, cfg: cfg}, closeFn, nil
}

// EnsureTable implements storage.Repository. All columns are TEXT; the key
// column is the primary key.
func (r *Repository) EnsureTable(ctx context.Context) error {
	defs := make([]string, 0, len(r.cfg.Columns))
	for _, c := range r.cfg.Columns {
		defs = append(defs, quoteIdent(c)+" TEXT")
	}
	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s, PRIMARY KEY (%s))",
		quoteIdent(r.cfg.Table),
		strings.Join(defs, ", "),
		quoteIdent(r.cfg.Key),
	)
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("sqlite: create table %s: %w", r.cfg.Table, err)
	}
	return nil
}

// UpsertRows implements storage.Repository using INSERT OR REPLACE inside a
// single transaction, batching rows into multi-value statements.
func (r *Repository) UpsertRows(ctx context.Context, rows []storage.Row) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	cols := r.cfg.Columns
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteIdent(c)
	}
	prefix := fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (%s) VALUES ",
		quoteIdent(r.cfg.Table),
		strings.Join(quoted, ", "),
	)
	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",") + ")"

	var total int64
	for start := 0; start < len(rows); start += insertBatch {
		end := start + insertBatch
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		placeholders := make([]string, len(batch))
		args := make([]any, 0, len(batch)*len(cols))
		for i, row := range batch {
			placeholders[i] = rowPlaceholder
			for _, c := range cols {
				args = append(args, row[c]) // missing fields become ""
			}
		}

		res, err := tx.ExecContext(ctx, prefix+strings.Join(placeholders, ", "), args...)
		if err != nil {
			return total, fmt.Errorf("sqlite: insert into %s: %w", r.cfg.Table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}

	if err := tx.Commit(); err != nil {
		return total, fmt.Errorf("sqlite: commit: %w", err)
	}
	return total, nil
}

// quoteIdent double-quotes an identifier already vetted by
// storage.CheckIdent.
func quoteIdent(s string) string {
	return `"` + s + `"`
}
