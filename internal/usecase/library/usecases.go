package library

import (
	"context"

	"github.com/project/catalog/internal/dto"
	"github.com/project/catalog/internal/entity"
	"go.uber.org/zap"
)

type (
	BooksRepository interface {
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

var _ BooksUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger          *zap.Logger
	booksRepository BooksRepository
	transactor      Transactor
}

func New(
	logger *zap.Logger,
	booksRepository BooksRepository,
	transactor Transactor,
) *libraryImpl {
	return &libraryImpl{
		logger:          logger,
		booksRepository: booksRepository,
		transactor:      transactor,
	}
}
