// Package memory provides an in-memory docstore.Store for tests and dev.
package memory

import (
	"context"
	"sync"

	"github.com/matricula/tuition-engine/docstore"
)

type Store struct {
	mu    sync.RWMutex
	doc   docstore.Document
	saved bool

	// SaveCount is incremented on every Save; the debounce tests use it to
	// verify coalescing.
	SaveCount int
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) (docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return docstore.Document{}, nil
	}
	return s.doc.Clone(), nil
}

func (s *Store) Save(_ context.Context, doc docstore.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	s.saved = true
	s.SaveCount++
	return nil
}
