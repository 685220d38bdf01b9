package store

import (
	"context"
	"errors"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail returns the user registered under the given address.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the email address is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// ClearCode drops the pending validation code, marking the user
	// validated. Returns ErrNotFound if no row changed.
	ClearCode(ctx context.Context, userID string) error

	// CountDeadEnd counts unvalidated users whose code expired before the
	// given cutoff. Used by housekeeping to surface stuck registrations.
	CountDeadEnd(ctx context.Context, cutoff time.Time) (int64, error)
}
