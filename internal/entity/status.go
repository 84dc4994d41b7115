package entity

import (
	"fmt"

	"golang.org/x/text/cases"
)

const (
	statusAvailable  = "В наличии"
	statusCheckedOut = "Выдана"
)

var (
	StatusAvailable  = BookStatus{value: statusAvailable}
	StatusCheckedOut = BookStatus{value: statusCheckedOut}
)

// BookStatus is an immutable lifecycle state of a book.
// The zero value is not a valid status.
type BookStatus struct {
	value string
}

// NewBookStatus matches raw against the allowed statuses ignoring case
// and returns the canonical one.
func NewBookStatus(raw string) (BookStatus, error) {
	folded := Fold(raw)

	for _, s := range []BookStatus{StatusAvailable, StatusCheckedOut} {
		if folded == Fold(s.value) {
			return s, nil
		}
	}

	return BookStatus{}, fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

func (s BookStatus) String() string {
	return s.value
}

func (s BookStatus) IsAvailable() bool {
	return s == StatusAvailable
}

func (s BookStatus) IsZero() bool {
	return s.value == ""
}

// Fold returns s in a form suitable for case-insensitive comparison.
// cases.Caser keeps state, so a fresh one is taken per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}
