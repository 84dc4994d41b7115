package library

import (
	"context"
	"fmt"

	"github.com/project/catalog/internal/dto"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AddBook stores a new available book under the next free id.
// Ids grow from the current maximum, so removed ids are not reused
// unless they were the largest.
func (l *libraryImpl) AddBook(ctx context.Context, title, author string, year int) (dto.BookDTO, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoAddBook(l.logger, "Start of add book", traceID, title, author, year)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		books, txErr := l.booksRepository.ListBooks(ctx)

		if txErr != nil {
			return txErr
		}

		book = entity.NewBook(nextID(books), title, author, year)

		return l.booksRepository.AddBook(ctx, book)
	})

	if log.ErrorAddBook(l.logger, err, "Failed add book", traceID, title, author, year) {
		span.SetAttributes(attribute.String("book_title", title))
		span.RecordError(err)
		return dto.BookDTO{}, err
	}

	span.SetAttributes(attribute.Int("book_id", book.ID))
	log.InfoAddBook(l.logger, "Added the book", traceID, title, author, year, book.ID)

	return dto.FromBook(book), nil
}

func (l *libraryImpl) RemoveBook(ctx context.Context, id int) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int("book_id", id))
	log.InfoRemoveBook(l.logger, "Start of remove book", traceID, id)

	removed, err := l.booksRepository.RemoveBook(ctx, id)
	if err == nil && !removed {
		err = fmt.Errorf("book with id %d: %w", id, entity.ErrBookNotFound)
	}

	if log.ErrorRemoveBook(l.logger, err, "Failed remove book", traceID, id) {
		span.RecordError(err)
		return err
	}

	log.InfoRemoveBook(l.logger, "Removed the book", traceID, id)

	return nil
}

func (l *libraryImpl) ChangeStatus(ctx context.Context, id int, rawStatus string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int("book_id", id))
	log.InfoChangeStatus(l.logger, "Start of change status", traceID, id, rawStatus)

	status, err := entity.NewBookStatus(rawStatus)
	if log.ErrorChangeStatus(l.logger, err, "Got invalid status", traceID, id, rawStatus) {
		span.RecordError(err)
		return err
	}

	changed, err := l.booksRepository.ChangeStatus(ctx, id, status)
	if err == nil && !changed {
		err = fmt.Errorf("book with id %d: %w", id, entity.ErrBookNotFound)
	}

	if log.ErrorChangeStatus(l.logger, err, "Failed change status", traceID, id, status.String()) {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(attribute.String("book_status", status.String()))
	log.InfoChangeStatus(l.logger, "Changed the status", traceID, id, status.String())

	return nil
}

// SearchBook returns an empty slice when nothing matches.
func (l *libraryImpl) SearchBook(ctx context.Context, criteria dto.SearchCriteria) ([]dto.BookDTO, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoSearchBook(l.logger, "Start of search book", traceID, criteria)

	books, err := l.booksRepository.SearchBooks(ctx, criteria)

	if log.ErrorSearchBook(l.logger, err, "Failed search book", traceID, criteria) {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("found", len(books)))
	log.InfoSearchBook(l.logger, "Searched the books", traceID, criteria, len(books))

	return dto.FromBooks(books), nil
}

func (l *libraryImpl) ListBooks(ctx context.Context) ([]dto.BookDTO, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoListBooks(l.logger, "Start of list books", traceID)

	books, err := l.booksRepository.ListBooks(ctx)

	if log.ErrorListBooks(l.logger, err, "Failed list books", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoListBooks(l.logger, "Listed the books", traceID, len(books))

	return dto.FromBooks(books), nil
}

func nextID(books []entity.Book) int {
	return lo.Reduce(books, func(maxID int, b entity.Book, _ int) int {
		return max(maxID, b.ID)
	}, 0) + 1
}
