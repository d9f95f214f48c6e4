// Package storage contains storage-agnostic contracts for persisting
// extracted rowsets, plus the backend registry.
//
// A converted rowset is already tabular (every row is a flat bag of string
// attributes sharing the rowset's column set), so persistence is a straight
// mapping onto a SQL table of TEXT columns. No type coercion happens here;
// interpreting field semantics is the reader's job.
package storage

import (
	"context"
	"fmt"
	"sync"
	"unicode"
)

// Row is one rowset row: attribute name to raw string value.
type Row map[string]string

// Config configures a storage backend for one destination table.
type Config struct {
	// DSN is the backend connection string.
	DSN string

	// Table is the destination table name. Must be a plain identifier.
	Table string

	// Columns enumerates the destination columns in insert order.
	Columns []string

	// Key names the column that uniquely identifies a row; it is the
	// table's primary key and the upsert conflict target.
	Key string
}

// Repository persists rows into the configured table.
type Repository interface {
	// EnsureTable creates the destination table when it does not exist:
	// all TEXT columns, primary key on the configured key column.
	EnsureTable(ctx context.Context) error

	// UpsertRows writes rows into the table, replacing any existing row
	// with the same key. It returns the number of rows written.
	UpsertRows(ctx context.Context, rows []Row) (int64, error)
}

// Factory opens a Repository for a validated Config. The returned func
// releases the underlying connection resources.
type Factory func(ctx context.Context, cfg Config) (Repository, func(), error)

var (
	regMu     sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) a backend factory for the given storage
// kind. It is called from backend packages' init functions.
func Register(kind string, fn Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	factories[kind] = fn
}

// Open locates the factory for kind and opens a Repository. Callers remain
// backend-agnostic past this point.
func Open(ctx context.Context, kind string, cfg Config) (Repository, func(), error) {
	regMu.RLock()
	fn, ok := factories[kind]
	regMu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("storage: no backend registered for kind %q", kind)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, nil, err
	}
	return fn(ctx, cfg)
}

func validateConfig(cfg Config) error {
	if cfg.DSN == "" {
		return fmt.Errorf("storage: DSN must not be empty")
	}
	if err := CheckIdent(cfg.Table); err != nil {
		return fmt.Errorf("storage: table: %w", err)
	}
	if len(cfg.Columns) == 0 {
		return fmt.Errorf("storage: at least one column required")
	}
	for _, c := range cfg.Columns {
		if err := CheckIdent(c); err != nil {
			return fmt.Errorf("storage: column: %w", err)
		}
	}
	if err := CheckIdent(cfg.Key); err != nil {
		return fmt.Errorf("storage: key column: %w", err)
	}
	return nil
}

// CheckIdent rejects names that are unsafe as SQL identifiers. Column and
// table names ultimately come from remote documents, so they are constrained
// to letters, digits, and underscores, not starting with a digit, before any
// SQL is assembled from them.
func CheckIdent(s string) error {
	if s == "" {
		return fmt.Errorf("empty identifier")
	}
	for i, r := range s {
		switch {
		case r == '_':
		case unicode.IsLetter(r):
		case unicode.IsDigit(r):
			if i == 0 {
				return fmt.Errorf("identifier %q starts with a digit", s)
			}
		default:
			return fmt.Errorf("identifier %q contains %q", s, r)
		}
	}
	return nil
}
