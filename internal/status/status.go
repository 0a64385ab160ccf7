// Package status persists the last-known state per URL across passes.
package status

import "urlwatch/internal/domain"

// Store is the port for status persistence. Load never fails: missing or
// unreadable prior data means "no prior data" and yields an empty map.
// A URL absent from the map is in domain.StateUnknown.
type Store interface {
	Load() map[string]domain.State
	Save(m map[string]domain.State) error
}
