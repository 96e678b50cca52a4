package documentmock

import (
	"context"
	"fmt"
	"sync"

	domain "mikopo-backoffice/internal/domain/document"
)

// Repo is a function-backed mock satisfying document.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, d *domain.Document) error
	ListByApplicationFn   func(ctx context.Context, applicationID uint64) ([]domain.Document, error)
	DeleteByApplicationFn func(ctx context.Context, applicationID uint64) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64) ([]domain.Document, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *Repo) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	if m.DeleteByApplicationFn != nil {
		return m.DeleteByApplicationFn(ctx, applicationID)
	}
	return nil
}

// Store is an in-memory document.Store keeping every Put so tests can assert
// what was stored and what was rolled back.
type Store struct {
	mu      sync.Mutex
	next    int
	Objects map[string][]byte

	PutErr    error
	RemoveErr error
}

func NewStore() *Store { return &Store{Objects: make(map[string][]byte)} }

func (s *Store) Put(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return "", s.PutErr
	}
	s.next++
	key := fmt.Sprintf("obj-%d-%s", s.next, filename)
	s.Objects[key] = data
	return key, nil
}

func (s *Store) Remove(ctx context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	delete(s.Objects, objectKey)
	return nil
}
