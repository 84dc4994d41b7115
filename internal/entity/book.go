package entity

type Book struct {
	ID     int
	Title  string
	Author string
	Year   int
	Status BookStatus
}

// NewBook returns a book that is available for lending.
func NewBook(id int, title, author string, year int) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}
}

func (b *Book) ChangeStatus(status BookStatus) {
	b.Status = status
}
