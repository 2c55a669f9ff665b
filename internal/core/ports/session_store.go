package ports

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// SessionStore keeps the in-progress order session for each conversation.
//
// Update is the only mutation path: the callback runs under the store's
// per-session guard, so two events racing on the same conversation cannot
// interleave their item and total updates. A conversation produces at most
// one in-flight event in practice, but the guard makes that assumption safe
// rather than load-bearing.
type SessionStore interface {
	// GetOrCreate returns a snapshot of the session for id, creating an
	// empty session first if none exists.
	GetOrCreate(id string) order.Snapshot

	// Update runs fn against the session for id (created if absent) under
	// the per-session guard. An error from fn is returned unchanged and
	// leaves whatever state fn produced.
	Update(id string, fn func(session *order.Session) error) error

	// Delete removes the session for id, if any.
	Delete(id string)

	// DeleteIdleBefore evicts sessions not touched since the cutoff and
	// returns how many were removed.
	DeleteIdleBefore(cutoff time.Time) int
}
