package logs

import (
	"context"
	"sync"
)

const DefaultSlotName = "fitness_calendar_data"

// Slot is a single named blob in persistent storage. Read returns
// ErrSlotEmpty when nothing was ever written.
type Slot interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

type MemorySlot struct {
	mu   sync.RWMutex
	name string
	data []byte
	set  bool
}

func NewMemorySlot(name string) *MemorySlot {
	return &MemorySlot{name: name}
}

func (s *MemorySlot) Name() string {
	return s.name
}

func (s *MemorySlot) Read(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return nil, ErrSlotEmpty
	}
	return append([]byte{}, s.data...), nil
}

func (s *MemorySlot) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte{}, data...)
	s.set = true
	return nil
}
