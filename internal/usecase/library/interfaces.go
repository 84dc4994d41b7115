package library

import (
	"context"

	"github.com/project/catalog/internal/dto"
)

type (
	BooksUseCase interface {
		AddBook(ctx context.Context, title, author string, year int) (dto.BookDTO, error)
		RemoveBook(ctx context.Context, id int) error
		SearchBook(ctx context.Context, criteria dto.SearchCriteria) ([]dto.BookDTO, error)
		ChangeStatus(ctx context.Context, id int, rawStatus string) error
		ListBooks(ctx context.Context) ([]dto.BookDTO, error)
	}
)
