package book

import (
	"encoding/json"
	"fmt"
	"os"
)

// NewMemoryRepoFromFile reads a JSON array of books from path once and
// serves it from memory for the rest of the process lifetime.
func NewMemoryRepoFromFile(path string) (*MemoryRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var records []Book
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return NewMemoryRepo(records)
}
