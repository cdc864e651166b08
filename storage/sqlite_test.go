package storage

import (
	"context"
	"testing"
	"time"
)

func TestSqliteAppendAndRecentTurns(t *testing.T) {
	store, err := NewSqliteInMemory()
	if err != nil {
		t.Fatalf("NewSqliteInMemory failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Now().Add(-time.Minute)
	contents := []string{"first", "second", "third"}
	for i, content := range contents {
		turn := Turn{
			ConversationID: "conv-1",
			Content:        content,
			IsUser:         i%2 == 0,
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}
		if err := store.AppendTurn(ctx, turn); err != nil {
			t.Fatalf("AppendTurn failed: %v", err)
		}
	}

	turns, err := store.RecentTurns(ctx, "conv-1", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	for i, turn := range turns {
		if turn.Content != contents[i] {
			t.Errorf("turn %d = %q, want %q (ascending order)", i, turn.Content, contents[i])
		}
	}
	if !turns[0].IsUser || turns[1].IsUser {
		t.Error("IsUser flags not preserved")
	}
}

func TestSqliteRecentTurnsWindow(t *testing.T) {
	store, err := NewSqliteInMemory()
	if err != nil {
		t.Fatalf("NewSqliteInMemory failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		turn := Turn{
			ConversationID: "conv-1",
			Content:        string(rune('a' + i)),
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}
		if err := store.AppendTurn(ctx, turn); err != nil {
			t.Fatalf("AppendTurn failed: %v", err)
		}
	}

	turns, err := store.RecentTurns(ctx, "conv-1", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}
	if len(turns) != 10 {
		t.Fatalf("expected window of 10, got %d", len(turns))
	}
	if turns[0].Content != "f" || turns[9].Content != "o" {
		t.Errorf("window should hold the newest 10 ascending, got %q..%q",
			turns[0].Content, turns[9].Content)
	}
}

func TestSqliteUnknownConversation(t *testing.T) {
	store, err := NewSqliteInMemory()
	if err != nil {
		t.Fatalf("NewSqliteInMemory failed: %v", err)
	}
	defer store.Close()

	turns, err := store.RecentTurns(context.Background(), "missing", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected no turns, got %d", len(turns))
	}
}

func TestMemoryStoreMatchesSqliteSemantics(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	// Append out of order; reads must still come back ascending.
	for _, i := range []int{2, 0, 1} {
		turn := Turn{
			ConversationID: "conv-1",
			Content:        string(rune('a' + i)),
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}
		if err := store.AppendTurn(ctx, turn); err != nil {
			t.Fatalf("AppendTurn failed: %v", err)
		}
	}

	turns, err := store.RecentTurns(ctx, "conv-1", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, turn := range turns {
		if turn.Content != want[i] {
			t.Errorf("turn %d = %q, want %q", i, turn.Content, want[i])
		}
	}
}
