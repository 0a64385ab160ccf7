// Package policy decides, for one freshly observed state, whether the new
// state should be recorded and whether a notification is warranted. It is
// pure: all persistence and delivery is the caller's job.
package policy

import (
	"fmt"
	"strings"
	"time"

	"urlwatch/internal/domain"
)

// Decision is the outcome of evaluating one observation against the
// last-known state. Direction is the transition direction when Notify is
// true, StateUnknown otherwise.
type Decision struct {
	Next      domain.State
	Notify    bool
	Direction domain.State
}

// Decide applies the transition rules:
//
//  1. First observation (prev unknown): record, never notify. A fresh entry
//     has no transition to report, and notifying would flood the channel
//     every time an entry is added to the configuration.
//  2. No change: record, never notify.
//  3. Genuine transition: record, notify iff the mode admits the new state
//     (down -> only down transitions, up -> only up, both -> everything).
func Decide(prev, observed domain.State, mode domain.Mode) Decision {
	d := Decision{Next: observed, Direction: domain.StateUnknown}
	if prev == domain.StateUnknown || prev == observed {
		return d
	}
	switch mode {
	case domain.ModeBoth:
		d.Notify = true
	case domain.ModeDown:
		d.Notify = observed == domain.StateDown
	case domain.ModeUp:
		d.Notify = observed == domain.StateUp
	}
	if d.Notify {
		d.Direction = observed
	}
	return d
}

// stampFormat is RFC3339 with millisecond precision; in UTC it renders a
// trailing "Z", e.g. 2024-01-01T00:00:00.000Z.
const stampFormat = "2006-01-02T15:04:05.000Z07:00"

// Message builds the single-line notification text. The wording is a
// presentation detail; direction, identity, timestamp and previous state
// must all be present.
func Message(name, url string, prev, direction domain.State, at time.Time) string {
	return fmt.Sprintf("%s: %s (%s) at %s (was %s)",
		strings.ToUpper(string(direction)), name, url,
		at.UTC().Format(stampFormat), prev)
}
