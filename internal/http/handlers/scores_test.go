package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/testutil"
)

func (f *fixture) postScores(body string) *httptest.ResponseRecorder {
	return testutil.Serve(f.routes(), http.MethodPost, "/api/scores", strings.NewReader(body))
}

func TestScoresRejectsMissingTeams(t *testing.T) {
	f := newFixture()
	bodies := []string{
		"",
		`{}`,
		`{"teams":[]}`,
		`{"teams":"133604"}`,
		`{"teams":[{"name":"no id"}]}`,
		`{"teams":[{"id":"   "}]}`,
		`{"teams":[{"id":"1"},{"id":"\t"}]}`,
		`not json`,
	}
	for _, body := range bodies {
		rr := f.postScores(body)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		if got := errorOf(t, rr); got != "Teams array is required" {
			t.Fatalf("body %q: unexpected error %q", body, got)
		}
	}
	if f.sports.ScoreCalls.Load() != 0 {
		t.Fatalf("expected no upstream calls for invalid bodies")
	}
}

func TestScoresAggregatesRequestedTeams(t *testing.T) {
	f := newFixture()
	f.sports.Scores = map[string][]scores.Score{
		"1": {testutil.SampleScore("e1", "1", "2"), testutil.SampleScore("e9", "8", "9")},
		"2": {testutil.SampleScore("e1", "1", "2"), testutil.SampleScore("e2", "3", "2")},
	}

	rr := f.postScores(`{"teams":[{"id":"1","name":"One"},{"id":"2"}]}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var list []scores.Score
	testutil.DecodeJSON(t, rr, &list)
	if len(list) != 2 {
		t.Fatalf("expected deduped events for requested teams, got %+v", list)
	}

	testutil.AssertStatus(t, f.postScores(`{"teams":[{"id":"1"}]}`), http.StatusOK)
	if got := f.sports.ScoreCalls.Load(); got != 2 {
		t.Fatalf("expected cached team not refetched, got %d calls", got)
	}
}

func TestDeviceScores(t *testing.T) {
	f := newFixture()
	f.sports.Scores = map[string][]scores.Score{"1": {testutil.SampleScore("e1", "1", "2")}}

	rr := f.get("/api/device/scores")
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	if got := errorOf(t, rr); got != "Team IDs required" {
		t.Fatalf("unexpected error %q", got)
	}

	rr = f.get("/api/device/scores?teams=1,2")
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "No cached scores available" || body["message"] != "Please fetch scores via the frontend first" {
		t.Fatalf("unexpected 404 body %+v", body)
	}

	testutil.AssertStatus(t, f.postScores(`{"teams":[{"id":"1"}]}`), http.StatusOK)
	calls := f.sports.ScoreCalls.Load()

	rr = f.get("/api/device/scores?teams=1,2")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var list []scores.DeviceScore
	testutil.DecodeJSON(t, rr, &list)
	if len(list) != 1 || list[0].Home.Team != "Team 1" || list[0].Home.Score != 3 {
		t.Fatalf("unexpected device scores %+v", list)
	}
	if f.sports.ScoreCalls.Load() != calls {
		t.Fatalf("expected device endpoint to read cache only")
	}
}

func TestDeviceScoresWebSocketPushes(t *testing.T) {
	f := newFixture(WithPushInterval(20 * time.Millisecond))
	f.sports.Scores = map[string][]scores.Score{"1": {testutil.SampleScore("e1", "1", "2")}}
	srv := httptest.NewServer(f.routes())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/device/scores/ws?teams=1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first deviceMessage
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if first.Error != "No cached scores available" || len(first.Scores) != 0 {
		t.Fatalf("expected empty push before any fetch, got %+v", first)
	}

	resp, err := http.Post(srv.URL+"/api/scores", "application/json", strings.NewReader(`{"teams":[{"id":"1"}]}`))
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	resp.Body.Close()

	for {
		var msg deviceMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(msg.Scores) == 1 {
			if msg.Scores[0].ID != "e1" || msg.Error != "" {
				t.Fatalf("unexpected push %+v", msg)
			}
			return
		}
	}
}

func TestDeviceScoresWebSocketRequiresTeams(t *testing.T) {
	f := newFixture()
	rr := f.get("/api/device/scores/ws")
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}
