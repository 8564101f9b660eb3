// Package settings persists small pieces of client-local state (for
// example the one-time welcome dismissal) in the local sqlite store.
package settings

import (
	"context"
	"database/sql"
)

// Keys of the known settings.
const (
	// KeyWelcomeDismissed marks that the first-run welcome has been shown
	// and dismissed on this device.
	KeyWelcomeDismissed = "welcome_dismissed"

	// KeyLastWalletAddress remembers the most recently resolved wallet
	// address, as a convenience for the connect prompt.
	KeyLastWalletAddress = "last_wallet_address"
)

// DBTX is the subset of database/sql the repository needs, satisfied by
// both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository is a persistent key/value store. Get returns nil (not an
// error) for absent keys.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}
