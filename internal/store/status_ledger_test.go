package store

import (
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
)

func TestObserveNeverRegresses(t *testing.T) {
	l := NewStatusLedger()
	now := time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC)

	steps := []struct {
		observed games.Status
		want     games.Status
	}{
		{games.StatusPreview, games.StatusPreview},
		{games.StatusLive, games.StatusLive},
		{games.StatusPreview, games.StatusLive},
		{games.StatusFinal, games.StatusFinal},
		{games.StatusLive, games.StatusFinal},
	}
	for i, s := range steps {
		if got := l.Observe(745000, s.observed, now); got != s.want {
			t.Fatalf("step %d: observed %s, got %s want %s", i, s.observed, got, s.want)
		}
	}
}

func TestObserveEmptyStatusStartsAsPreview(t *testing.T) {
	l := NewStatusLedger()
	if got := l.Observe(1, "", time.Now()); got != games.StatusPreview {
		t.Fatalf("expected preview, got %s", got)
	}
}

func TestApplyGames(t *testing.T) {
	l := NewStatusLedger()
	now := time.Now()
	l.Observe(1, games.StatusFinal, now)

	list := l.ApplyGames([]games.Game{
		{ID: 1, AbstractStatus: games.StatusLive},
		{ID: 2, AbstractStatus: games.StatusLive},
	}, now)
	if list[0].AbstractStatus != games.StatusFinal || list[1].AbstractStatus != games.StatusLive {
		t.Fatalf("unexpected statuses %+v", list)
	}
	if got, ok := l.Status(2); !ok || got != games.StatusLive {
		t.Fatalf("expected game 2 tracked as live, got %s %v", got, ok)
	}
}

func TestPruneDropsStaleEntries(t *testing.T) {
	l := NewStatusLedger()
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	l.Observe(1, games.StatusFinal, base)
	l.Observe(2, games.StatusLive, base.Add(48*time.Hour))

	if removed := l.Prune(base.Add(time.Hour)); removed != 1 {
		t.Fatalf("expected one pruned entry, got %d", removed)
	}
	if _, ok := l.Status(1); ok {
		t.Fatal("expected game 1 pruned")
	}
	if l.Len() != 1 {
		t.Fatalf("expected one entry left, got %d", l.Len())
	}
}

func TestObserveConcurrent(t *testing.T) {
	l := NewStatusLedger()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := games.StatusLive
			if i%2 == 0 {
				status = games.StatusFinal
			}
			l.Observe(7, status, time.Now())
		}(i)
	}
	wg.Wait()
	if got, _ := l.Status(7); got != games.StatusFinal {
		t.Fatalf("expected final after concurrent observes, got %s", got)
	}
}
