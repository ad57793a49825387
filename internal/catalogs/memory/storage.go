// Package memory provides a process-local persistence backend. It backs
// the "memory" storage setting and lets tests observe and fail saves.
package memory

import (
	"slices"
	"sync"

	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// Storage keeps the last saved item set in memory.
type Storage struct {
	mu       sync.Mutex
	items    []media.Item
	saves    int
	loadErr  error
	saveErr  error
	isClosed bool
}

// NewStorage returns a backend preloaded with items.
func NewStorage(items ...media.Item) *Storage {
	return &Storage{items: slices.Clone(items)}
}

// LoadAll returns the preloaded or last saved items.
func (s *Storage) LoadAll() ([]media.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, pkgerrors.WrapStorage("memory", "load", s.loadErr)
	}
	return slices.Clone(s.items), nil
}

// SaveAll records items unless a save failure was injected.
func (s *Storage) SaveAll(items []media.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isClosed {
		return pkgerrors.WrapStorage("memory", "save", pkgerrors.ErrClosed)
	}
	if s.saveErr != nil {
		return pkgerrors.WrapStorage("memory", "save", s.saveErr)
	}
	s.items = slices.Clone(items)
	s.saves++
	return nil
}

// FailLoad makes the next LoadAll calls fail with err. Nil clears it.
func (s *Storage) FailLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// FailSave makes SaveAll fail with err. Nil clears it.
func (s *Storage) FailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns the number of successful saves.
func (s *Storage) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// IDs returns the IDs of the last saved item set, in order.
func (s *Storage) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.items))
	for i, item := range s.items {
		ids[i] = item.ID()
	}
	return ids
}

// Close implements io.Closer.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isClosed = true
	return nil
}
