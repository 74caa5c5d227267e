package store

import (
	"context"
	"errors"

	"github.com/embercast/accountd/internal/accounts/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists is returned when an insert trips a uniqueness
	// constraint. The schema carries unique indexes on users.username and
	// users.email, so a concurrent duplicate signup that slips past the
	// application pre-check still fails here.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
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
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists on a username or email collision.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used when the login identifier has no "@".
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used when the login identifier contains "@".
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// EmailExists reports whether any user has the given email. Signup
	// pre-checks with this before inserting.
	EmailExists(ctx context.Context, email string) (bool, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}
