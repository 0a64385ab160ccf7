package status

import (
	"sync"

	"urlwatch/internal/domain"
)

// Memory is an in-process Store for tests and the read-only API. Saves
// counts completed writes, which lets tests assert write amplification.
type Memory struct {
	mu    sync.RWMutex
	m     map[string]domain.State
	Saves int
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]domain.State)}
}

func (s *Memory) Load() map[string]domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.State, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

func (s *Memory) Save(m map[string]domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[string]domain.State, len(m))
	for k, v := range m {
		s.m[k] = v
	}
	s.Saves++
	return nil
}
