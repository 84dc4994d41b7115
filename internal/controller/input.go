package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// minYear is the year of the oldest dated printed book.
const minYear = 868

var errInputEnded = errors.New("input ended")

func trimInput(s string) string {
	return strings.TrimSpace(s)
}

func (i *implementation) readText(ctx context.Context, msg, emptyMsg string) (string, error) {
	text, err := i.prompt(ctx, msg)
	if err != nil {
		return "", err
	}

	if err := validation.Validate(text, validation.Required.Error(emptyMsg)); err != nil {
		return "", err
	}

	return text, nil
}

func (i *implementation) readID(ctx context.Context) (int, error) {
	raw, err := i.prompt(ctx, msgPromptID)
	if err != nil {
		return 0, err
	}

	return parseID(raw)
}

func (i *implementation) readYear(ctx context.Context) (int, error) {
	raw, err := i.prompt(ctx, msgPromptYear)
	if err != nil {
		return 0, err
	}

	return parseYear(raw, i.now().Year())
}

func parseID(raw string) (int, error) {
	err := validation.Validate(raw,
		validation.Required.Error(msgIDNotDigit),
		is.Digit.Error(msgIDNotDigit),
	)
	if err != nil {
		return 0, err
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, validation.NewError("validation_book_id", msgIDNotDigit)
	}

	return id, nil
}

func parseYear(raw string, maxYear int) (int, error) {
	err := validation.Validate(raw,
		validation.Required.Error(msgYearNotDigit),
		is.Digit.Error(msgYearNotDigit),
	)
	if err != nil {
		return 0, err
	}

	rangeMsg := fmt.Sprintf(msgYearRange, minYear, maxYear)

	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewError("validation_book_year", rangeMsg)
	}

	err = validation.Validate(year,
		validation.Min(minYear).Error(rangeMsg),
		validation.Max(maxYear).Error(rangeMsg),
	)
	if err != nil {
		return 0, err
	}

	return year, nil
}

// isNumber reports whether s is a non-empty run of digits.
func isNumber(s string) bool {
	return s != "" && validation.Validate(s, is.Digit) == nil
}
