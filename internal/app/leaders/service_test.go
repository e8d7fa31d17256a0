package leaders

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/teststubs"
)

func TestLeadersUnknownCategory(t *testing.T) {
	stub := &teststubs.StubMLBProvider{}
	svc := NewService(stub, cache.New(nil), nil)

	if _, err := svc.Leaders(context.Background(), "bogus", "2024"); !errors.Is(err, leaders.ErrUnknownCategory) {
		t.Fatalf("expected unknown category, got %v", err)
	}
	if stub.LeaderCalls.Load() != 0 {
		t.Fatal("expected no upstream call for unknown category")
	}
}

func TestLeadersHomeRunsCappedAndLabelled(t *testing.T) {
	entries := make([]leaders.Entry, 8)
	for i := range entries {
		entries[i] = leaders.Entry{Rank: i + 1, Player: leaders.Player{Name: "p"}, Value: "30"}
	}
	stub := &teststubs.StubMLBProvider{Board: leaders.Board{Leaders: entries}}
	svc := NewService(stub, cache.New(nil), nil)

	board, err := svc.Leaders(context.Background(), "homeRuns", "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.DisplayName != "Home Runs" || len(board.Leaders) > leaders.MaxLeaders {
		t.Fatalf("unexpected board %+v", board)
	}
	if args := stub.Args(); args[0] != "homeRuns" || args[1] != "2024" {
		t.Fatalf("unexpected upstream args %v", args)
	}

	_, _ = svc.Leaders(context.Background(), "homeRuns", "2024")
	if stub.LeaderCalls.Load() != 1 {
		t.Fatalf("expected cached second call, got %d", stub.LeaderCalls.Load())
	}
}
