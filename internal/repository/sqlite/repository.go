package sqlite

import (
	"context"
	"database/sql"
	"time"

	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository is a durable string key/value store, shaped like the browser's local storage.
type Repository interface {
	// GetItem returns the value for key and whether it exists.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem creates or replaces the value for key.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// ListItems returns every stored item ordered by key.
	ListItems(ctx context.Context) ([]*StorageItem, error)

	Close() error
}

// Options tunes per-operation timeouts. Zero values disable the timeout.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
	now  func() time.Time
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a repository with the given timeouts
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// An in-memory database lives only as long as its connection.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetItem retrieves a value by key
func (r *SQLiteRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM local_storage WHERE key = ?`
	item, err := QuerySingle(ctx, r.db, query, ScanItem, "storage item", key, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return item.Value, true, nil
}

// SetItem upserts a value by key
func (r *SQLiteRepository) SetItem(ctx context.Context, key, value string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO local_storage (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err := Execute(ctx, r.db, query, key, value, FormatTimeForDB(r.now()))
	return err
}

// RemoveItem deletes a value by key
func (r *SQLiteRepository) RemoveItem(ctx context.Context, key string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	_, err := Execute(ctx, r.db, `DELETE FROM local_storage WHERE key = ?`, key)
	return err
}

// ListItems retrieves all stored items
func (r *SQLiteRepository) ListItems(ctx context.Context) ([]*StorageItem, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM local_storage ORDER BY key ASC`
	return QueryMultiple(ctx, r.db, query, ScanItems, "storage items")
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
