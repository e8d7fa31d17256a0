package games

import "testing"

func TestStatusValues(t *testing.T) {
	expected := map[Status]string{
		StatusPreview: "Preview",
		StatusLive:    "Live",
		StatusFinal:   "Final",
	}
	for status, want := range expected {
		if string(status) != want {
			t.Fatalf("expected %q got %q", want, status)
		}
	}
}

func TestAdvanceNeverMovesBackward(t *testing.T) {
	cases := []struct {
		current Status
		next    Status
		want    Status
	}{
		{StatusPreview, StatusLive, StatusLive},
		{StatusLive, StatusFinal, StatusFinal},
		{StatusPreview, StatusFinal, StatusFinal},
		{StatusFinal, StatusLive, StatusFinal},
		{StatusFinal, StatusPreview, StatusFinal},
		{StatusLive, StatusPreview, StatusLive},
		{StatusLive, StatusLive, StatusLive},
		{"", StatusPreview, StatusPreview},
		{"", "", StatusPreview},
	}
	for _, tc := range cases {
		if got := tc.current.Advance(tc.next); got != tc.want {
			t.Fatalf("%q.Advance(%q) = %q, want %q", tc.current, tc.next, got, tc.want)
		}
	}
}

func TestAdvanceSequenceIsMonotonic(t *testing.T) {
	observed := []Status{StatusPreview, StatusLive, StatusPreview, StatusLive, StatusFinal, StatusLive, StatusPreview}
	var current Status
	for _, next := range observed {
		prev := current
		current = current.Advance(next)
		if current.Rank() < prev.Rank() {
			t.Fatalf("status regressed from %q to %q", prev, current)
		}
	}
	if current != StatusFinal {
		t.Fatalf("expected Final at end, got %q", current)
	}
}

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"Preview":   StatusPreview,
		"Live":      StatusLive,
		"final":     StatusFinal,
		"Game Over": StatusFinal,
		"":          StatusPreview,
		"Other":     StatusPreview,
	}
	for raw, want := range cases {
		if got := ParseStatus(raw); got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}
