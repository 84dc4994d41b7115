package log

import (
	"github.com/project/catalog/internal/dto"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddBook(l *zap.Logger, msg string, traceID, title, author string, year int, id ...int) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("book_title", title),
			zap.String("book_author", author),
			zap.Int("book_year", year),
			zap.String("action", AddBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("book_id", id[0]),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Int("book_year", year),
		zap.String("action", AddBook))
}

func ErrorAddBook(l *zap.Logger, err error, msg string, traceID, title, author string, year int) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Int("book_year", year),
		zap.Error(err),
		zap.String("action", AddBook))
}

func InfoRemoveBook(l *zap.Logger, msg string, traceID string, bookID int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("book_id", bookID),
		zap.String("action", RemoveBook))
}

func ErrorRemoveBook(l *zap.Logger, err error, msg string, traceID string, bookID int) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int("book_id", bookID),
		zap.Error(err),
		zap.String("action", RemoveBook))
}

func InfoChangeStatus(l *zap.Logger, msg string, traceID string, bookID int, status string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("book_id", bookID),
		zap.String("book_status", status),
		zap.String("action", ChangeStatus))
}

func ErrorChangeStatus(l *zap.Logger, err error, msg string, traceID string, bookID int, status string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int("book_id", bookID),
		zap.String("book_status", status),
		zap.Error(err),
		zap.String("action", ChangeStatus))
}

func InfoSearchBook(l *zap.Logger, msg string, traceID string, criteria dto.SearchCriteria, found ...int) {
	fields := []zap.Field{
		zap.String("trace_id", traceID),
		zap.String("search_title", criteria.Title),
		zap.String("search_author", criteria.Author),
		zap.Int("search_year", criteria.Year),
		zap.String("action", SearchBook),
	}
	if len(found) > 0 {
		fields = append(fields, zap.Int("found", found[0]))
	}
	logger.MakeInfo(l, msg, fields...)
}

func ErrorSearchBook(l *zap.Logger, err error, msg string, traceID string, criteria dto.SearchCriteria) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("search_title", criteria.Title),
		zap.String("search_author", criteria.Author),
		zap.Int("search_year", criteria.Year),
		zap.Error(err),
		zap.String("action", SearchBook))
}

func InfoListBooks(l *zap.Logger, msg string, traceID string, count ...int) {
	if len(count) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("action", ListBooks))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("count", count[0]),
		zap.String("action", ListBooks))
}

func ErrorListBooks(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", ListBooks))
}
