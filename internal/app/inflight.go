package app

import (
	"sync"

	"github.com/journiq/journiq-server/internal/domain"
)

// InflightGuard prevents overlapping generator invocations for the same
// user. The UI disables its buttons while a request is in flight, but a
// double-click or a second tab still reaches the server; without this
// guard a concurrent generate-goals call inserts a duplicate batch.
//
// The guard is keyed by (userID, operation) so independent operations
// for the same user never block each other.
type InflightGuard struct {
	mu       sync.Mutex
	inflight map[inflightKey]struct{}
}

type inflightKey struct {
	userID    string
	operation string
}

// NewInflightGuard creates an empty guard.
func NewInflightGuard() *InflightGuard {
	return &InflightGuard{
		inflight: make(map[inflightKey]struct{}),
	}
}

// Acquire claims the (userID, operation) slot. It returns a release
// function on success and domain.ErrConflict when the slot is already
// held. It never blocks.
func (g *InflightGuard) Acquire(userID, operation string) (func(), error) {
	key := inflightKey{userID: userID, operation: operation}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.inflight[key]; held {
		return nil, domain.NewConflictError(operation, "generation already in progress")
	}

	g.inflight[key] = struct{}{}

	release := func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		delete(g.inflight, key)
	}

	return release, nil
}
