// Package storage provides conversation turn persistence.
//
// Turns are append-only and immutable once written; reads always return
// ascending creation-time order. Concurrent questions on the same
// conversation are not serialized here — timestamp ordering is the only
// guarantee.
package storage

import (
	"context"
	"time"
)

// Turn is one utterance in a conversation.
type Turn struct {
	ID             string
	ConversationID string
	Content        string
	IsUser         bool
	CreatedAt      time.Time
}

// ConversationStore persists conversation turns.
type ConversationStore interface {
	// AppendTurn records a turn. A zero CreatedAt is stamped with the
	// current time; an empty ID is assigned.
	AppendTurn(ctx context.Context, turn Turn) error

	// RecentTurns returns the last n turns for a conversation, ordered
	// ascending by creation time. Returns an empty slice (not nil) for an
	// unknown conversation.
	RecentTurns(ctx context.Context, conversationID string, n int) ([]Turn, error)
}
