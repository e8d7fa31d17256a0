package games

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/store"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/teststubs"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newService(t *testing.T, stub *teststubs.StubMLBProvider) (*Service, *clock) {
	t.Helper()
	clk := &clock{now: time.Date(2024, 4, 2, 3, 0, 0, 0, time.UTC)}
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	c := cache.New(nil, cache.WithClock(clk.Now))
	return NewService(stub, c, store.NewStatusLedger(), ny, WithClock(clk.Now)), clk
}

func TestTodayUsesServiceTimezone(t *testing.T) {
	stub := &teststubs.StubMLBProvider{}
	svc, _ := newService(t, stub)

	if got := svc.TodayDate(); got != "2024-04-01" {
		t.Fatalf("expected New York date 2024-04-01, got %s", got)
	}
	if _, err := svc.Today(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args := stub.Args(); len(args) != 1 || args[0] != "2024-04-01" {
		t.Fatalf("unexpected upstream date %v", args)
	}
}

func TestByDateFiltersToRequestedDate(t *testing.T) {
	stub := &teststubs.StubMLBProvider{Games: []games.Game{
		{ID: 1, Date: "2024-04-01"},
		{ID: 2, Date: "2024-03-31"},
	}}
	svc, _ := newService(t, stub)

	list, err := svc.ByDate(context.Background(), "2024-04-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != 1 {
		t.Fatalf("expected only 2024-04-01 games, got %+v", list)
	}
	if _, err := svc.ByDate(context.Background(), "04/01/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
}

func TestByDateCachesWithinTTL(t *testing.T) {
	stub := &teststubs.StubMLBProvider{Games: []games.Game{{ID: 1, Date: "2024-04-01"}}}
	svc, clk := newService(t, stub)
	ctx := context.Background()

	_, _ = svc.ByDate(ctx, "2024-04-01")
	clk.now = clk.now.Add(4 * time.Minute)
	_, _ = svc.ByDate(ctx, "2024-04-01")
	if stub.ScheduleCalls.Load() != 1 {
		t.Fatalf("expected cached second request, got %d calls", stub.ScheduleCalls.Load())
	}
	clk.now = clk.now.Add(time.Minute)
	_, _ = svc.ByDate(ctx, "2024-04-01")
	_, _ = svc.ByDate(ctx, "2024-04-01")
	if stub.ScheduleCalls.Load() != 2 {
		t.Fatalf("expected exactly one refetch after ttl, got %d calls", stub.ScheduleCalls.Load())
	}
}

func TestStatusNeverRegressesAcrossRefreshes(t *testing.T) {
	stub := &teststubs.StubMLBProvider{Games: []games.Game{{ID: 9, Date: "2024-04-01", AbstractStatus: games.StatusLive}}}
	svc, clk := newService(t, stub)
	ctx := context.Background()

	_, _ = svc.ByDate(ctx, "2024-04-01")
	stub.Games = []games.Game{{ID: 9, Date: "2024-04-01", AbstractStatus: games.StatusPreview}}
	clk.now = clk.now.Add(10 * time.Minute)

	list, err := svc.ByDate(ctx, "2024-04-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list[0].AbstractStatus != games.StatusLive {
		t.Fatalf("expected status to stay Live, got %s", list[0].AbstractStatus)
	}

	stub.Detail = games.Detail{ID: 9, AbstractStatus: games.StatusPreview}
	detail, _ := svc.Detail(ctx, 9)
	if detail.AbstractStatus != games.StatusLive {
		t.Fatalf("expected detail status to stay Live, got %s", detail.AbstractStatus)
	}
}

func TestTeamScheduleDefaultsAndValidation(t *testing.T) {
	stub := &teststubs.StubMLBProvider{Games: []games.Game{
		{ID: 1, HomeTeam: games.TeamScore{ID: 147}},
		{ID: 2, HomeTeam: games.TeamScore{ID: 111}, AwayTeam: games.TeamScore{ID: 119}},
	}}
	svc, _ := newService(t, stub)
	ctx := context.Background()

	list, err := svc.TeamSchedule(ctx, 147, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != 1 {
		t.Fatalf("expected only team games, got %+v", list)
	}
	if args := stub.Args(); len(args) != 2 || args[0] != "2024-03-25" || args[1] != "2024-04-15" {
		t.Fatalf("unexpected default range %v", args)
	}

	if _, err := svc.TeamSchedule(ctx, 147, "bad", ""); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	if _, err := svc.TeamSchedule(ctx, 147, "2024-04-10", "2024-04-01"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected invalid range, got %v", err)
	}

	_, _ = svc.TeamSchedule(ctx, 147, "", "")
	_, _ = svc.TeamSchedule(ctx, 147, "2024-04-01", "2024-04-02")
	if stub.TeamSchedCalls.Load() != 2 {
		t.Fatalf("expected one load per distinct range, got %d", stub.TeamSchedCalls.Load())
	}
}

func TestDetailPropagatesError(t *testing.T) {
	stub := &teststubs.StubMLBProvider{Err: errors.New("down")}
	svc, _ := newService(t, stub)
	if _, err := svc.Detail(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
}
