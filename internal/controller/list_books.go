package controller

import "context"

func (i *implementation) ListBooks(ctx context.Context) error {
	books, err := i.booksUseCase.ListBooks(ctx)
	if err != nil {
		return err
	}

	if len(books) == 0 {
		i.println(msgNoBooks)
		return nil
	}

	i.printBooks(books)

	return nil
}
