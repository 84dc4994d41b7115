package repository

import (
	"context"
	"errors"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/catalog/internal/entity"
)

type txLayer uint

const (
	none txLayer = iota
	extract
)

type errLayer uint

const (
	null errLayer = iota
	f
	beginTx
	commitTx
	rollBackTx
)

var errInternal = errors.New("internal error")

var bookColumns = []string{"id", "title", "author", "year", "status"}

func insertTxInMock(ctx context.Context, mock pgxmock.PgxPoolIface) context.Context {
	mock.ExpectBegin()
	tx, _ := mock.Begin(ctx)
	ctx = context.WithValue(ctx, txInjector{}, tx)
	return ctx
}

func testBooks() []entity.Book {
	checkedOut := entity.NewBook(2, "Грокаем Алгоритмы", "Адитья Бхаргава", 2017)
	checkedOut.ChangeStatus(entity.StatusCheckedOut)

	return []entity.Book{
		entity.NewBook(1, "Изучаем Python", "Эрик Мэтиз", 2024),
		checkedOut,
	}
}
