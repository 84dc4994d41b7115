package repository

import (
	"context"

	"github.com/project/catalog/internal/dto"
	"github.com/project/catalog/internal/entity"
)

type (
	// LibraryRepository is the storage contract shared by every book store.
	// RemoveBook and ChangeStatus report false when no book has the given id.
	LibraryRepository interface {
		AddBook(ctx context.Context, book entity.Book) error
		RemoveBook(ctx context.Context, id int) (bool, error)
		SearchBooks(ctx context.Context, criteria dto.SearchCriteria) ([]entity.Book, error)
		ChangeStatus(ctx context.Context, id int, status entity.BookStatus) (bool, error)
		ListBooks(ctx context.Context) ([]entity.Book, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)
