package history

import (
	"context"
	"errors"

	"github.com/khandoba/threatindex/score"
)

// DefaultCap is the maximum number of snapshots retained per vault.
const DefaultCap = 100

// Common errors returned by history operations.
var (
	// ErrInvalidVaultID is returned when a vault identifier is empty.
	ErrInvalidVaultID = errors.New("history: invalid vault id")

	// ErrUnavailable is returned when the underlying storage cannot be
	// read or appended. Callers must fail the assessment rather than
	// treat an outage as "no baseline".
	ErrUnavailable = errors.New("history: store unavailable")
)

// Store provides access to per-vault score timelines.
//
// History returns snapshots ordered oldest first. Last returns the most
// recent snapshot, or nil when the vault has no history yet (which is not
// an error: a first assessment has no baseline).
type Store interface {
	// Append adds a snapshot to the vault's timeline, evicting the
	// oldest entry once the cap is reached.
	Append(ctx context.Context, vaultID string, snap score.Snapshot) error

	// History returns the vault's timeline, oldest first. An unknown
	// vault yields an empty timeline.
	History(ctx context.Context, vaultID string) ([]score.Snapshot, error)

	// Last returns the most recent snapshot for the vault, or nil when
	// none exists.
	Last(ctx context.Context, vaultID string) (*score.Snapshot, error)
}
