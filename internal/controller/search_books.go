package controller

import (
	"context"
	"strconv"

	"github.com/project/catalog/internal/dto"
)

// SearchBooks uses one query for title and author, and for the year when
// the query is a number.
func (i *implementation) SearchBooks(ctx context.Context) error {
	query, err := i.prompt(ctx, msgPromptSearch)
	if err != nil {
		return err
	}

	criteria := dto.SearchCriteria{
		Title:  query,
		Author: query,
	}
	if isNumber(query) {
		if year, convErr := strconv.Atoi(query); convErr == nil {
			criteria.Year = year
		}
	}

	books, err := i.booksUseCase.SearchBook(ctx, criteria)
	if err != nil {
		return err
	}

	if len(books) == 0 {
		i.println(msgSearchNotFound)
		return nil
	}

	i.printBooks(books)

	return nil
}

func (i *implementation) printBooks(books []dto.BookDTO) {
	for _, b := range books {
		i.println(b.String())
	}
}
