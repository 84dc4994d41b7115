package dto

import (
	"strings"

	"github.com/project/catalog/internal/entity"
)

// SearchCriteria holds optional filters. An empty string or a zero year
// means the field does not take part in the search.
type SearchCriteria struct {
	Title  string
	Author string
	Year   int
}

func (c SearchCriteria) IsEmpty() bool {
	return c.Title == "" && c.Author == "" && c.Year == 0
}

// Matches reports whether the book satisfies any populated field.
// Title and author match as case-insensitive substrings, year exactly.
func (c SearchCriteria) Matches(book entity.Book) bool {
	if c.Title != "" && strings.Contains(entity.Fold(book.Title), entity.Fold(c.Title)) {
		return true
	}

	if c.Author != "" && strings.Contains(entity.Fold(book.Author), entity.Fold(c.Author)) {
		return true
	}

	return c.Year != 0 && c.Year == book.Year
}
