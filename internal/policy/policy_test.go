package policy

import (
	"strings"
	"testing"
	"time"

	"urlwatch/internal/domain"
)

func TestDecide_AllCombinations(t *testing.T) {
	up := domain.StateUp
	down := domain.StateDown
	unknown := domain.StateUnknown

	cases := []struct {
		name     string
		prev     domain.State
		observed domain.State
		mode     domain.Mode
		notify   bool
	}{
		// first observation: never notify, any mode
		{"unknown_up_down", unknown, up, domain.ModeDown, false},
		{"unknown_up_up", unknown, up, domain.ModeUp, false},
		{"unknown_up_both", unknown, up, domain.ModeBoth, false},
		{"unknown_down_down", unknown, down, domain.ModeDown, false},
		{"unknown_down_up", unknown, down, domain.ModeUp, false},
		{"unknown_down_both", unknown, down, domain.ModeBoth, false},
		// no change: never notify
		{"up_up_down", up, up, domain.ModeDown, false},
		{"up_up_up", up, up, domain.ModeUp, false},
		{"up_up_both", up, up, domain.ModeBoth, false},
		{"down_down_down", down, down, domain.ModeDown, false},
		{"down_down_up", down, down, domain.ModeUp, false},
		{"down_down_both", down, down, domain.ModeBoth, false},
		// up -> down: notify unless mode is up-only
		{"up_down_down", up, down, domain.ModeDown, true},
		{"up_down_up", up, down, domain.ModeUp, false},
		{"up_down_both", up, down, domain.ModeBoth, true},
		// down -> up: notify unless mode is down-only
		{"down_up_down", down, up, domain.ModeDown, false},
		{"down_up_up", down, up, domain.ModeUp, true},
		{"down_up_both", down, up, domain.ModeBoth, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.prev, tc.observed, tc.mode)
			if d.Next != tc.observed {
				t.Fatalf("next state: want %v, got %v", tc.observed, d.Next)
			}
			if d.Notify != tc.notify {
				t.Fatalf("notify: want %v, got %+v", tc.notify, d)
			}
			if tc.notify && d.Direction != tc.observed {
				t.Fatalf("direction: want %v, got %v", tc.observed, d.Direction)
			}
			if !tc.notify && d.Direction != domain.StateUnknown {
				t.Fatalf("direction should be unset, got %v", d.Direction)
			}
		})
	}
}

func TestDecide_NextAlwaysObserved(t *testing.T) {
	// the new observation is recorded even when the notification is gated off
	d := Decide(domain.StateDown, domain.StateUp, domain.ModeDown)
	if d.Next != domain.StateUp || d.Notify {
		t.Fatalf("want silent state update, got %+v", d)
	}
}

func TestMessage_ContainsAllFields(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	msg := Message("API", "https://example.com/health", domain.StateUp, domain.StateDown, at)

	want := "DOWN: API (https://example.com/health) at 2024-01-01T00:00:00.000Z (was up)"
	if msg != want {
		t.Fatalf("message:\nwant %q\ngot  %q", want, msg)
	}
}

func TestMessage_UpDirectionAndTimezone(t *testing.T) {
	// non-UTC input must still render a UTC stamp
	loc := time.FixedZone("CET", 3600)
	at := time.Date(2024, 6, 1, 13, 30, 0, 500e6, loc)
	msg := Message("API", "https://a.test", domain.StateDown, domain.StateUp, at)

	if !strings.HasPrefix(msg, "UP: ") {
		t.Fatalf("want UP prefix, got %q", msg)
	}
	if !strings.Contains(msg, "2024-06-01T12:30:00.500Z") {
		t.Fatalf("want UTC timestamp, got %q", msg)
	}
	if !strings.Contains(msg, "(was down)") {
		t.Fatalf("want previous state, got %q", msg)
	}
}
