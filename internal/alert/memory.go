package alert

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"StockRadar/internal/model"
)

// MemoryStore keeps alerts in process memory. Used when no database is
// configured, and by tests.
type MemoryStore struct {
	mu     sync.Mutex
	alerts []model.Alert
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Add(a model.Alert) (model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.alerts = append(s.alerts, a)
	return a, nil
}

func (s *MemoryStore) List() ([]model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("alert %s not found", id)
}

func (s *MemoryStore) Close() error { return nil }
