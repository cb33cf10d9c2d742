package session

import "sync"

// MemorySlot is an in-process Slot for tests and single-instance use.
// ExternalChange simulates a write arriving from another instance.
type MemorySlot struct {
	mu      sync.Mutex
	data    []byte
	handler func(data []byte)
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemorySlot) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *MemorySlot) Watch(fn func(data []byte)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = fn
	return nil
}

// ExternalChange overwrites the slot and fires the watch handler, as if
// another instance had written it. nil simulates a cleared or missing slot.
func (s *MemorySlot) ExternalChange(data []byte) {
	s.mu.Lock()
	if data == nil {
		s.data = nil
	} else {
		s.data = append([]byte(nil), data...)
	}
	handler := s.handler
	s.mu.Unlock()
	if handler != nil {
		handler(data)
	}
}
