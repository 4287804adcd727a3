package book

import (
	"context"
	"errors"
)

// Service provides read access to the catalog.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetBookByID returns the record whose id equals the input exactly
// (case-sensitive, no normalization). When no record matches it returns
// (nil, nil): absence is a valid outcome, not a fault.
func (s *Service) GetBookByID(ctx context.Context, id string) (*Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// ListBooks returns every record in collection order.
func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}
