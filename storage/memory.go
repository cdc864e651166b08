package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory ConversationStore for tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.RWMutex
	turns map[string][]Turn
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{turns: make(map[string][]Turn)}
}

// AppendTurn records a turn.
func (s *MemoryStore) AppendTurn(ctx context.Context, turn Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}
	s.turns[turn.ConversationID] = append(s.turns[turn.ConversationID], turn)
	return nil
}

// RecentTurns returns the last n turns in ascending creation order.
func (s *MemoryStore) RecentTurns(ctx context.Context, conversationID string, n int) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.turns[conversationID]
	sorted := make([]Turn, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	if sorted == nil {
		sorted = []Turn{}
	}
	return sorted, nil
}

var _ ConversationStore = (*MemoryStore)(nil)
