package controller

import (
	"context"
	"fmt"
)

func (i *implementation) AddBook(ctx context.Context) error {
	title, err := i.readText(ctx, msgPromptTitle, msgTitleEmpty)
	if err != nil {
		return err
	}

	author, err := i.readText(ctx, msgPromptAuthor, msgAuthorEmpty)
	if err != nil {
		return err
	}

	year, err := i.readYear(ctx)
	if err != nil {
		return err
	}

	book, err := i.booksUseCase.AddBook(ctx, title, author, year)
	if err != nil {
		return err
	}

	i.println(fmt.Sprintf(msgAddSuccess, book.ID))

	return nil
}
