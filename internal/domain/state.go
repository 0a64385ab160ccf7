package domain

import "fmt"

// State is the reachability state of an entry. StateUnknown means no prior
// observation exists; it is never written to the status file.
type State string

const (
	StateUnknown State = "unknown"
	StateUp      State = "up"
	StateDown    State = "down"
)

// ParseState accepts the two persistable states. "unknown" is represented
// by key absence in the status file, so it is rejected here.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateUp, StateDown:
		return State(s), nil
	}
	return StateUnknown, fmt.Errorf("invalid state %q", s)
}

// Mode selects which transition directions trigger a notification.
type Mode string

const (
	ModeDown Mode = "down" // notify only when the new state is down
	ModeUp   Mode = "up"   // notify only when the new state is up
	ModeBoth Mode = "both"
)

// ParseMode maps a config string to a Mode; empty defaults to ModeDown.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeDown, nil
	case ModeDown, ModeUp, ModeBoth:
		return Mode(s), nil
	}
	return ModeDown, fmt.Errorf("invalid mode %q", s)
}
