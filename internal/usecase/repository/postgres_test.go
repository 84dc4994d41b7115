package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/catalog/internal/dto"
	"github.com/project/catalog/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func initPostgresTest(t *testing.T) (pgxmock.PgxPoolIface, *postgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPostgres(zap.NewNop(), mock)
}

func Test_postgresRepository_AddBook(t *testing.T) {
	t.Parallel()

	book := entity.NewBook(3, "A Byte of Python", "Swaroop Chitlur", 2013)

	tests := []struct {
		name       string
		txL        txLayer
		dbErr      error
		errRequire error
	}{
		{name: "ok without transaction", txL: none},
		{name: "ok with transaction", txL: extract},
		{name: "duplicate id", txL: none, dbErr: &pgconn.PgError{Code: ErrUniqueViolation}, errRequire: entity.ErrDuplicateID},
		{name: "err in exec", txL: none, dbErr: errInternal, errRequire: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := initPostgresTest(t)
			ctx := context.Background()
			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			}

			expected := mock.ExpectExec(`INSERT INTO books`).
				WithArgs(3, "A Byte of Python", "Swaroop Chitlur", 2013, "В наличии")
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err := repo.AddBook(ctx, book)
			require.ErrorIs(t, err, tt.errRequire)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_RemoveBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		affected    int64
		dbErr       error
		wantRemoved bool
	}{
		{name: "removed", affected: 1, wantRemoved: true},
		{name: "absent", affected: 0, wantRemoved: false},
		{name: "err in exec", dbErr: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := initPostgresTest(t)
			expected := mock.ExpectExec(`DELETE FROM books`).WithArgs(7)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))
			}

			removed, err := repo.RemoveBook(context.Background(), 7)
			require.ErrorIs(t, err, tt.dbErr)
			require.Equal(t, tt.wantRemoved, removed)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_ChangeStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		affected    int64
		dbErr       error
		wantChanged bool
	}{
		{name: "changed", affected: 1, wantChanged: true},
		{name: "absent", affected: 0, wantChanged: false},
		{name: "err in exec", dbErr: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := initPostgresTest(t)
			expected := mock.ExpectExec(`UPDATE books SET status`).WithArgs("Выдана", 2)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			}

			changed, err := repo.ChangeStatus(context.Background(), 2, entity.StatusCheckedOut)
			require.ErrorIs(t, err, tt.dbErr)
			require.Equal(t, tt.wantChanged, changed)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_ListBooks(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		mock, repo := initPostgresTest(t)
		mock.ExpectQuery(`SELECT id, title, author, year, status`).
			WillReturnRows(pgxmock.NewRows(bookColumns).
				AddRow(1, "Изучаем Python", "Эрик Мэтиз", 2024, "В наличии").
				AddRow(2, "Грокаем Алгоритмы", "Адитья Бхаргава", 2017, "выдана"))

		books, err := repo.ListBooks(context.Background())
		require.NoError(t, err)
		require.Equal(t, testBooks(), books)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid stored status", func(t *testing.T) {
		t.Parallel()

		mock, repo := initPostgresTest(t)
		mock.ExpectQuery(`SELECT id, title, author, year, status`).
			WillReturnRows(pgxmock.NewRows(bookColumns).
				AddRow(1, "Изучаем Python", "Эрик Мэтиз", 2024, "потеряна"))

		books, err := repo.ListBooks(context.Background())
		require.ErrorIs(t, err, entity.ErrMalformedRecord)
		require.Nil(t, books)
	})

	t.Run("err in query", func(t *testing.T) {
		t.Parallel()

		mock, repo := initPostgresTest(t)
		mock.ExpectQuery(`SELECT id, title, author, year, status`).WillReturnError(errInternal)

		books, err := repo.ListBooks(context.Background())
		require.ErrorIs(t, err, errInternal)
		require.Nil(t, books)
	})

	t.Run("inside transaction", func(t *testing.T) {
		t.Parallel()

		mock, repo := initPostgresTest(t)
		ctx := insertTxInMock(context.Background(), mock)
		mock.ExpectQuery(`SELECT id, title, author, year, status`).
			WillReturnRows(pgxmock.NewRows(bookColumns))

		books, err := repo.ListBooks(ctx)
		require.NoError(t, err)
		require.Empty(t, books)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func Test_postgresRepository_SearchBooks(t *testing.T) {
	t.Parallel()

	t.Run("any populated field", func(t *testing.T) {
		t.Parallel()

		mock, repo := initPostgresTest(t)
		mock.ExpectQuery(`SELECT .+ FROM "books" WHERE .+ILIKE.+ OR .+"year" = .+ORDER BY "id" ASC`).
			WithArgs("%Python%", int64(2017)).
			WillReturnRows(pgxmock.NewRows(bookColumns).
				AddRow(1, "Изучаем Python", "Эрик Мэтиз", 2024, "В наличии").
				AddRow(2, "Грокаем Алгоритмы", "Адитья Бхаргава", 2017, "Выдана"))

		books, err := repo.SearchBooks(context.Background(), dto.SearchCriteria{Title: "Python", Year: 2017})
		require.NoError(t, err)
		require.Equal(t, testBooks(), books)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wildcards are escaped", func(t *testing.T) {
		t.Parallel()

		mock, repo := initPostgresTest(t)
		mock.ExpectQuery(`SELECT .+ FROM "books" WHERE`).
			WithArgs(`%100\%%`).
			WillReturnRows(pgxmock.NewRows(bookColumns))

		books, err := repo.SearchBooks(context.Background(), dto.SearchCriteria{Author: "100%"})
		require.NoError(t, err)
		require.Nil(t, books)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty criteria skips the query", func(t *testing.T) {
		t.Parallel()

		mock, repo := initPostgresTest(t)

		books, err := repo.SearchBooks(context.Background(), dto.SearchCriteria{})
		require.NoError(t, err)
		require.Nil(t, books)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err in query", func(t *testing.T) {
		t.Parallel()

		mock, repo := initPostgresTest(t)
		mock.ExpectQuery(`SELECT .+ FROM "books"`).WillReturnError(errInternal)

		books, err := repo.SearchBooks(context.Background(), dto.SearchCriteria{Title: "Go"})
		require.ErrorIs(t, err, errInternal)
		require.Nil(t, books)
	})
}

func Test_likePattern(t *testing.T) {
	t.Parallel()

	require.Equal(t, "%Python%", likePattern("Python"))
	require.Equal(t, `%a\_b\%c\\%`, likePattern(`a_b%c\`))
}
