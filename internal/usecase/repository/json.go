package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/project/catalog/internal/dto"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
	indent   = "    "
)

var codec = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// bookRecord is the on-disk shape of a book.
type bookRecord struct {
	BookID int    `json:"book_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status string `json:"status"`
}

var _ LibraryRepository = (*jsonRepository)(nil)

// jsonRepository keeps the whole collection in memory and rewrites the
// backing file after every mutation. It is not safe for concurrent use and
// holds no lock on the file.
type jsonRepository struct {
	logger *zap.Logger
	path   string
	books  []entity.Book
}

// NewJSON loads the collection stored at path. A missing file is created
// with an empty collection.
func NewJSON(l *zap.Logger, path string) (*jsonRepository, error) {
	r := &jsonRepository{
		logger: l,
		path:   path,
	}

	books, err := r.load()
	if errors.Is(err, fs.ErrNotExist) {
		logger.MakeInfo(l, "storage file not found, creating an empty one", zap.String("path", path))

		if err = os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return nil, fmt.Errorf("can not create storage directory: %w", err)
		}

		if err = r.save(nil); err != nil {
			return nil, err
		}

		return r, nil
	}

	if err != nil {
		return nil, err
	}

	r.books = books
	logger.MakeInfo(l, "loaded books from storage", zap.String("path", path), zap.Int("count", len(books)))

	return r, nil
}

func (r *jsonRepository) AddBook(_ context.Context, book entity.Book) error {
	if _, ok := r.find(book.ID); ok {
		return fmt.Errorf("book with id %d: %w", book.ID, entity.ErrDuplicateID)
	}

	next := append(slices.Clone(r.books), book)

	return r.commit(next)
}

func (r *jsonRepository) RemoveBook(_ context.Context, id int) (bool, error) {
	idx, ok := r.find(id)
	if !ok {
		return false, nil
	}

	next := slices.Delete(slices.Clone(r.books), idx, idx+1)

	if err := r.commit(next); err != nil {
		return false, err
	}

	return true, nil
}

func (r *jsonRepository) SearchBooks(_ context.Context, criteria dto.SearchCriteria) ([]entity.Book, error) {
	if criteria.IsEmpty() {
		return nil, nil
	}

	found := lo.Filter(r.books, func(b entity.Book, _ int) bool {
		return criteria.Matches(b)
	})

	if len(found) == 0 {
		return nil, nil
	}

	return found, nil
}

func (r *jsonRepository) ChangeStatus(_ context.Context, id int, status entity.BookStatus) (bool, error) {
	idx, ok := r.find(id)
	if !ok {
		return false, nil
	}

	next := slices.Clone(r.books)
	next[idx].ChangeStatus(status)

	if err := r.commit(next); err != nil {
		return false, err
	}

	return true, nil
}

func (r *jsonRepository) ListBooks(_ context.Context) ([]entity.Book, error) {
	return slices.Clone(r.books), nil
}

func (r *jsonRepository) find(id int) (int, bool) {
	_, idx, ok := lo.FindIndexOf(r.books, func(b entity.Book) bool {
		return b.ID == id
	})

	return idx, ok
}

// commit persists next and replaces the mirror only if the write succeeded.
func (r *jsonRepository) commit(next []entity.Book) error {
	if err := r.save(next); err != nil {
		return err
	}

	r.books = next

	return nil
}

func (r *jsonRepository) load() ([]entity.Book, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	var records []bookRecord
	if err = codec.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: can not decode %s: %w", entity.ErrMalformedRecord, r.path, err)
	}

	books := make([]entity.Book, 0, len(records))
	seen := make(map[int]struct{}, len(records))

	for _, rec := range records {
		if rec.BookID <= 0 {
			return nil, fmt.Errorf("%w: non-positive book id %d", entity.ErrMalformedRecord, rec.BookID)
		}

		if _, dup := seen[rec.BookID]; dup {
			return nil, fmt.Errorf("%w: book id %d occurs twice", entity.ErrMalformedRecord, rec.BookID)
		}
		seen[rec.BookID] = struct{}{}

		status, err := entity.NewBookStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: book %d: %w", entity.ErrMalformedRecord, rec.BookID, err)
		}

		books = append(books, entity.Book{
			ID:     rec.BookID,
			Title:  rec.Title,
			Author: rec.Author,
			Year:   rec.Year,
			Status: status,
		})
	}

	return books, nil
}

func (r *jsonRepository) save(books []entity.Book) (err error) {
	records := make([]bookRecord, 0, len(books))
	for _, b := range books {
		records = append(records, bookRecord{
			BookID: b.ID,
			Title:  b.Title,
			Author: b.Author,
			Year:   b.Year,
			Status: b.Status.String(),
		})
	}

	data, err := codec.MarshalIndent(records, "", indent)
	if err != nil {
		return fmt.Errorf("can not encode books: %w", err)
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("can not open storage file: %w", err)
	}

	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("can not close storage file: %w", closeErr)
		}
	}()

	if _, err = file.Write(data); err != nil {
		return fmt.Errorf("can not write storage file: %w", err)
	}

	logger.MakeInfo(r.logger, "books saved to storage", zap.String("path", r.path), zap.Int("count", len(records)))

	return nil
}
