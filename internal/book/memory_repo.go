package book

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MemoryRepo serves a catalog loaded once at startup. The collection never
// changes after construction, so concurrent lookups need no locking.
type MemoryRepo struct {
	records []Book
	byID    map[string]Book
}

// NewMemoryRepo copies the records and indexes them by id. Every record must
// carry a non-empty id and ids must be unique across the collection.
func NewMemoryRepo(records []Book) (*MemoryRepo, error) {
	r := &MemoryRepo{
		records: make([]Book, len(records)),
		byID:    make(map[string]Book, len(records)),
	}
	copy(r.records, records)
	for i, b := range r.records {
		if err := validate.Struct(b); err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i, err)
		}
		if _, exists := r.byID[b.ID]; exists {
			return nil, fmt.Errorf("catalog record %d: duplicate id %q", i, b.ID)
		}
		r.byID[b.ID] = b
	}
	return r, nil
}

// List returns the records in collection order.
func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	out := make([]Book, len(r.records))
	copy(out, r.records)
	return out, nil
}

// GetByID matches ids by exact string equality.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Book, error) {
	b, ok := r.byID[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}
