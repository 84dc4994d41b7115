package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/catalog/internal/dto"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

const ErrUniqueViolation = "23505"

const booksTable = "books"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type DataBase interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ LibraryRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger  *zap.Logger
	db      DataBase
	dialect goqu.DialectWrapper
}

func NewPostgres(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger:  logger,
		db:      db,
		dialect: goqu.Dialect("postgres"),
	}
}

func (p *postgresRepository) AddBook(ctx context.Context, book entity.Book) error {
	const query = `
INSERT INTO books (id, title, author, year, status)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := p.exec(ctx, query, book.ID, book.Title, book.Author, book.Year, book.Status.String())

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == ErrUniqueViolation {
		return fmt.Errorf("book with id %d: %w", book.ID, entity.ErrDuplicateID)
	}

	return err
}

func (p *postgresRepository) RemoveBook(ctx context.Context, id int) (bool, error) {
	const query = `
DELETE FROM books WHERE id = $1
`
	tag, err := p.exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (p *postgresRepository) SearchBooks(ctx context.Context, criteria dto.SearchCriteria) ([]entity.Book, error) {
	if criteria.IsEmpty() {
		return nil, nil
	}

	var conditions []exp.Expression
	if criteria.Title != "" {
		conditions = append(conditions, goqu.C("title").ILike(likePattern(criteria.Title)))
	}

	if criteria.Author != "" {
		conditions = append(conditions, goqu.C("author").ILike(likePattern(criteria.Author)))
	}

	if criteria.Year != 0 {
		conditions = append(conditions, goqu.C("year").Eq(criteria.Year))
	}

	query, args, err := p.dialect.
		From(booksTable).
		Select("id", "title", "author", "year", "status").
		Where(goqu.Or(conditions...)).
		Order(goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("can not build search query: %w", err)
	}

	books, err := p.queryBooks(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, nil
	}

	return books, nil
}

func (p *postgresRepository) ChangeStatus(ctx context.Context, id int, status entity.BookStatus) (bool, error) {
	const query = `
UPDATE books SET status = $1 WHERE id = $2
`
	tag, err := p.exec(ctx, query, status.String(), id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (p *postgresRepository) ListBooks(ctx context.Context) ([]entity.Book, error) {
	const query = `
SELECT id, title, author, year, status
FROM books
ORDER BY id
`
	return p.queryBooks(ctx, query)
}

func (p *postgresRepository) exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if tx, txErr := extractTx(ctx); txErr == nil {
		return tx.Exec(ctx, query, args...)
	}

	return p.db.Exec(ctx, query, args...)
}

func (p *postgresRepository) queryBooks(ctx context.Context, query string, args ...any) ([]entity.Book, error) {
	var (
		err  error
		rows pgx.Rows
	)
	if tx, txErr := extractTx(ctx); txErr == nil {
		rows, err = tx.Query(ctx, query, args...)
	} else {
		rows, err = p.db.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	result := make([]entity.Book, 0)

	for rows.Next() {
		var (
			book   entity.Book
			status string
		)

		if err = rows.Scan(&book.ID, &book.Title, &book.Author, &book.Year, &status); err != nil {
			return nil, err
		}

		book.Status, err = entity.NewBookStatus(status)
		if logger.CheckError(err, p.logger, "stored book has invalid status", zap.Int("book_id", book.ID), zap.Error(err)) {
			return nil, fmt.Errorf("%w: book %d: %w", entity.ErrMalformedRecord, book.ID, err)
		}

		result = append(result, book)
	}

	return result, rows.Err()
}

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
