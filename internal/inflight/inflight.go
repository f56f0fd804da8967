// Package inflight tracks operations that must not run twice at once, such
// as deleting the same row from two browser tabs.
package inflight

import "sync"

type Set struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewSet() *Set {
	return &Set{keys: make(map[string]struct{})}
}

// Acquire claims key. When ok is false another holder is still running and
// release is nil.
func (s *Set) Acquire(key string) (release func(), ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.keys[key]; busy {
		return nil, false
	}
	s.keys[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.keys, key)
			s.mu.Unlock()
		})
	}, true
}
