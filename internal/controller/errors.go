package controller

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/catalog/internal/entity"
)

// convertErr turns an action error into the text shown to the user.
func (i *implementation) convertErr(err error) string {
	var validationErr validation.Error

	switch {
	case errors.Is(err, entity.ErrBookNotFound):
		return msgNotFound
	case errors.Is(err, entity.ErrInvalidStatus):
		return msgStatusInvalid
	case errors.Is(err, entity.ErrDuplicateID):
		return msgDuplicateID
	case errors.Is(err, errInputEnded):
		return msgInputEnded
	case errors.As(err, &validationErr):
		return validationErr.Error()
	default:
		return msgInternal
	}
}
