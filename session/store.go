// Package session owns the per-conversation state the triage core mutates.
// The core never assumes a storage mechanism: sessions are created on first
// message, evicted by TTL or explicit reset, and the store decides where
// they live.
package session

import (
	"context"

	"clinic-triage-backend/models"
)

// Store is the interface for session-context storage. This allows swapping
// between in-memory and Redis backends.
type Store interface {
	// Load returns the context for a session, creating a fresh one in the
	// initial dialogue state when none exists.
	Load(ctx context.Context, sessionID string) (*models.SessionContext, error)

	// Save persists the context after a turn.
	Save(ctx context.Context, sessionID string, session *models.SessionContext) error

	// Clear removes a session so the next turn starts fresh.
	Clear(ctx context.Context, sessionID string) error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
