package server

import (
	"sync"

	"github.com/linqs/srinivasan-mlj20/internal/report"
)

// Store holds the most recent report served by the API.
type Store struct {
	mu     sync.RWMutex
	latest *report.Report
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(r *report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = r
}

func (s *Store) Latest() (*report.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.latest != nil
}
