package dto

import (
	"testing"

	"github.com/project/catalog/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestBookDTOString(t *testing.T) {
	t.Parallel()

	book := entity.NewBook(1, "Изучаем Python", "Эрик Мэтиз", 2024)
	require.Equal(t, "1. Изучаем Python - Эрик Мэтиз (2024) - В наличии", FromBook(book).String())

	book.ChangeStatus(entity.StatusCheckedOut)
	require.Equal(t, "1. Изучаем Python - Эрик Мэтиз (2024) - Выдана", FromBook(book).String())
}

func TestFromBooks(t *testing.T) {
	t.Parallel()

	require.Nil(t, FromBooks(nil))

	books := []entity.Book{
		entity.NewBook(1, "A", "B", 2000),
		entity.NewBook(2, "C", "D", 2001),
	}
	require.Equal(t, []BookDTO{
		{ID: 1, Title: "A", Author: "B", Year: 2000, Status: "В наличии"},
		{ID: 2, Title: "C", Author: "D", Year: 2001, Status: "В наличии"},
	}, FromBooks(books))
}

func TestSearchCriteriaMatches(t *testing.T) {
	t.Parallel()

	book := entity.NewBook(1, "Изучаем Python", "Эрик Мэтиз", 2024)

	tests := []struct {
		name     string
		criteria SearchCriteria
		want     bool
	}{
		{name: "empty criteria", criteria: SearchCriteria{}, want: false},
		{name: "title substring", criteria: SearchCriteria{Title: "Python"}, want: true},
		{name: "title other case", criteria: SearchCriteria{Title: "изучаем"}, want: true},
		{name: "title miss", criteria: SearchCriteria{Title: "Go"}, want: false},
		{name: "author substring", criteria: SearchCriteria{Author: "мэтиз"}, want: true},
		{name: "year exact", criteria: SearchCriteria{Year: 2024}, want: true},
		{name: "year miss", criteria: SearchCriteria{Year: 2023}, want: false},
		{name: "any field is enough", criteria: SearchCriteria{Title: "Go", Author: "Нет", Year: 2024}, want: true},
		{name: "all fields miss", criteria: SearchCriteria{Title: "Go", Author: "Нет", Year: 1999}, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, test.want, test.criteria.Matches(book))
		})
	}

	require.True(t, SearchCriteria{}.IsEmpty())
	require.False(t, SearchCriteria{Year: 1}.IsEmpty())
}
