package games

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestGameJSONTags(t *testing.T) {
	gameType := reflect.TypeOf(Game{})
	fields := map[string]string{
		"ID":             "id",
		"Date":           "date",
		"StartTime":      "startTime",
		"AbstractStatus": "abstractStatus",
		"InningState":    "inningState",
		"Venue":          "venue",
		"HomeTeam":       "homeTeam",
		"AwayTeam":       "awayTeam",
	}
	for name, tag := range fields {
		f, ok := gameType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := f.Tag.Get("json"); got != tag {
			t.Fatalf("field %s expected tag %s, got %s", name, tag, got)
		}
	}
}

func TestInvolvesAndFilterByDate(t *testing.T) {
	list := []Game{
		{ID: 1, Date: "2024-04-01", HomeTeam: TeamScore{ID: 147}, AwayTeam: TeamScore{ID: 111}},
		{ID: 2, Date: "2024-04-02", HomeTeam: TeamScore{ID: 121}, AwayTeam: TeamScore{ID: 147}},
	}
	if !list[1].Involves(147) || list[1].Involves(111) {
		t.Fatal("unexpected Involves result")
	}
	got := FilterByDate(list, "2024-04-02")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only game 2, got %+v", got)
	}
}

func TestDetailOptionalSectionsSerializeAsNull(t *testing.T) {
	raw, err := json.Marshal(Detail{ID: 7, AbstractStatus: StatusPreview})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	for _, key := range []string{`"weather":null`, `"currentPlay":null`, `"decisions":null`, `"current":null`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in %s", key, body)
		}
	}
}
