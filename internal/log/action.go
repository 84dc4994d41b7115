package log

type Action = string

const (
	AddBook      Action = "AddBook"
	RemoveBook          = "RemoveBook"
	SearchBook          = "SearchBook"
	ListBooks           = "ListBooks"
	ChangeStatus        = "ChangeStatus"
)
