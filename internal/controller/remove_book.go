package controller

import "context"

func (i *implementation) RemoveBook(ctx context.Context) error {
	id, err := i.readID(ctx)
	if err != nil {
		return err
	}

	if err = i.booksUseCase.RemoveBook(ctx, id); err != nil {
		return err
	}

	i.println(msgDeleteSuccess)

	return nil
}
