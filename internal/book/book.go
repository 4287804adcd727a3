package book

import (
	"errors"
)

// ErrNotFound is returned by repositories when no book matches an id.
var ErrNotFound = errors.New("book not found")

// Book represents a single catalog record.
type Book struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name"`
	Genre string `json:"genre"`
}

// DefaultCatalog returns the built-in records served when no external data
// source is configured. Names may repeat across records; ids may not.
func DefaultCatalog() []Book {
	return []Book{
		{ID: "1", Name: "Kento", Genre: "Fantasy"},
		{ID: "2", Name: "hikari", Genre: "Fantasy"},
		{ID: "3", Name: "Kento", Genre: "Sci"},
	}
}
