package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
)

type ledgerEntry struct {
	status   games.Status
	lastSeen time.Time
}

// StatusLedger remembers the furthest status seen per game so that
// served statuses only move Preview -> Live -> Final.
type StatusLedger struct {
	mu      sync.RWMutex
	entries map[int]ledgerEntry
}

// NewStatusLedger constructs an empty ledger.
func NewStatusLedger() *StatusLedger {
	return &StatusLedger{
		entries: make(map[int]ledgerEntry),
	}
}

// Observe records status for gameID and returns the status to serve.
func (l *StatusLedger) Observe(gameID int, status games.Status, at time.Time) games.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, ok := l.entries[gameID]
	next := status
	if ok {
		next = prev.status.Advance(status)
	} else if next == "" {
		next = games.StatusPreview
	}
	l.entries[gameID] = ledgerEntry{status: next, lastSeen: at}
	return next
}

// ApplyGames rewrites each game's status through Observe.
func (l *StatusLedger) ApplyGames(list []games.Game, at time.Time) []games.Game {
	for i := range list {
		list[i].AbstractStatus = l.Observe(list[i].ID, list[i].AbstractStatus, at)
	}
	return list
}

// Status returns the recorded status for gameID.
func (l *StatusLedger) Status(gameID int) (games.Status, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.entries[gameID]
	return e.status, ok
}

// Prune drops games not seen since before and returns how many went.
func (l *StatusLedger) Prune(before time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, e := range l.entries {
		if e.lastSeen.Before(before) {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

// Len reports how many games are tracked.
func (l *StatusLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
