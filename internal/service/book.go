package service

import (
	"BookShelf/internal/storage"
	"BookShelf/model"
	"BookShelf/utils"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"gorm.io/gorm"
)

var pdfMagic = []byte("%PDF-")

// BookService is the book registry plus the upload orchestration that
// ties registry rows to blobs.
type BookService struct {
	db    *gorm.DB
	store storage.Store
}

// NewBookService builds a BookService on the given registry and store.
func NewBookService(db *gorm.DB, store storage.Store) *BookService {
	return &BookService{db: db, store: store}
}

// AddBook inserts a registry row for an already-stored blob.
func (s *BookService) AddBook(filename string, ownerID uint64) (*model.Book, error) {
	book := &model.Book{
		Filename: filename,
		OwnerID:  ownerID,
	}
	if err := s.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// ListBooksForOwner returns all books owned by a user, oldest first.
func (s *BookService) ListBooksForOwner(ownerID uint64) ([]model.Book, error) {
	var books []model.Book
	err := s.db.Where("owner_id = ?", ownerID).Order("id").Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook returns the book with the given id.
func (s *BookService) GetBook(id uint64) (*model.Book, error) {
	var book model.Book
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// UploadBook validates, stores and registers an uploaded PDF. The blob
// is written before the registry insert; if the insert fails the blob
// is removed again so no dangling row survives. Validation failures
// leave no side effects at all.
func (s *BookService) UploadBook(ctx context.Context, ownerID uint64, rawName string, reader io.Reader, size int64) (*model.Book, error) {
	if !strings.HasSuffix(rawName, ".pdf") {
		return nil, ErrInvalidFileType
	}
	name := utils.SanitizeFilename(rawName)
	if name == "" || !strings.HasSuffix(name, ".pdf") {
		return nil, ErrInvalidFileType
	}

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, ErrInvalidFileType
	}
	if !bytes.Equal(header, pdfMagic) {
		return nil, ErrInvalidFileType
	}
	content := io.MultiReader(bytes.NewReader(header), reader)

	if err := s.store.Put(ctx, name, content, size); err != nil {
		return nil, err
	}
	book, err := s.AddBook(name, ownerID)
	if err != nil {
		_ = s.store.Remove(ctx, name)
		return nil, err
	}
	return book, nil
}

// OpenBlob opens the blob behind a registry row.
func (s *BookService) OpenBlob(ctx context.Context, book *model.Book) (io.ReadCloser, storage.ObjectInfo, error) {
	return s.store.Get(ctx, book.Filename)
}
