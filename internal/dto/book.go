package dto

import (
	"fmt"

	"github.com/project/catalog/internal/entity"
	"github.com/samber/lo"
)

// BookDTO is a read-only copy of a book for presentation.
type BookDTO struct {
	ID     int
	Title  string
	Author string
	Year   int
	Status string
}

func FromBook(book entity.Book) BookDTO {
	return BookDTO{
		ID:     book.ID,
		Title:  book.Title,
		Author: book.Author,
		Year:   book.Year,
		Status: book.Status.String(),
	}
}

func FromBooks(books []entity.Book) []BookDTO {
	if len(books) == 0 {
		return nil
	}

	return lo.Map(books, func(b entity.Book, _ int) BookDTO {
		return FromBook(b)
	})
}

func (b BookDTO) String() string {
	return fmt.Sprintf("%d. %s - %s (%d) - %s", b.ID, b.Title, b.Author, b.Year, b.Status)
}
