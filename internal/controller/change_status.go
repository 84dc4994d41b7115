package controller

import "context"

func (i *implementation) ChangeStatus(ctx context.Context) error {
	id, err := i.readID(ctx)
	if err != nil {
		return err
	}

	status, err := i.prompt(ctx, msgPromptStatus)
	if err != nil {
		return err
	}

	if err = i.booksUseCase.ChangeStatus(ctx, id, status); err != nil {
		return err
	}

	i.println(msgStatusSuccess)

	return nil
}
