package history

import (
	"context"
	"sync"

	"github.com/khandoba/threatindex/score"
)

// MemoryStore is an in-process Store. Each vault owns its own timeline and
// lock, so appends for different vaults proceed without contention; only the
// map of timelines is guarded globally.
type MemoryStore struct {
	mu        sync.RWMutex
	timelines map[string]*timeline
	cap       int
}

type timeline struct {
	mu    sync.Mutex
	snaps []score.Snapshot
}

// NewMemoryStore creates a MemoryStore retaining up to cap snapshots per
// vault. A non-positive cap falls back to DefaultCap.
func NewMemoryStore(cap int) *MemoryStore {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &MemoryStore{
		timelines: make(map[string]*timeline),
		cap:       cap,
	}
}

// Append implements Store.
func (s *MemoryStore) Append(_ context.Context, vaultID string, snap score.Snapshot) error {
	if vaultID == "" {
		return ErrInvalidVaultID
	}
	tl := s.timeline(vaultID)

	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.snaps = append(tl.snaps, snap)
	if len(tl.snaps) > s.cap {
		// Evict the oldest entry, keeping the slice's backing array
		// from growing without bound.
		copy(tl.snaps, tl.snaps[1:])
		tl.snaps = tl.snaps[:s.cap]
	}
	return nil
}

// History implements Store.
func (s *MemoryStore) History(_ context.Context, vaultID string) ([]score.Snapshot, error) {
	if vaultID == "" {
		return nil, ErrInvalidVaultID
	}
	s.mu.RLock()
	tl, ok := s.timelines[vaultID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	tl.mu.Lock()
	defer tl.mu.Unlock()
	out := make([]score.Snapshot, len(tl.snaps))
	copy(out, tl.snaps)
	return out, nil
}

// Last implements Store.
func (s *MemoryStore) Last(_ context.Context, vaultID string) (*score.Snapshot, error) {
	if vaultID == "" {
		return nil, ErrInvalidVaultID
	}
	s.mu.RLock()
	tl, ok := s.timelines[vaultID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	tl.mu.Lock()
	defer tl.mu.Unlock()
	if len(tl.snaps) == 0 {
		return nil, nil
	}
	snap := tl.snaps[len(tl.snaps)-1]
	return &snap, nil
}

func (s *MemoryStore) timeline(vaultID string) *timeline {
	s.mu.RLock()
	tl, ok := s.timelines[vaultID]
	s.mu.RUnlock()
	if ok {
		return tl
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tl, ok = s.timelines[vaultID]; ok {
		return tl
	}
	tl = &timeline{}
	s.timelines[vaultID] = tl
	return tl
}
