package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/shelfmark/backend/internal/errors"
	"github.com/shelfmark/backend/internal/models"
)

// document is the on-disk shape of the persisted collection.
type document struct {
	Books []models.Book `json:"books"`
}

// FileBackend persists the collection as a single JSON document on disk.
type FileBackend struct {
	path string
}

// NewFileBackend creates a FileBackend writing to path. The parent
// directory is created if missing; failure to create it is the one
// unrecoverable startup error.
func NewFileBackend(path string) (*FileBackend, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable,
				fmt.Sprintf("cannot create data directory %s", dir), err)
		}
	}
	return &FileBackend{path: path}, nil
}

// Load reads and parses the document. A missing file is not an error.
func (f *FileBackend) Load() ([]models.Book, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(apperrors.ErrStorageUnavailable,
			"cannot read persisted collection", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrMalformedData,
			"persisted collection is not valid JSON", err)
	}
	if doc.Books == nil {
		// Parsed but without a books array: wrong shape.
		return nil, false, apperrors.New(apperrors.ErrMalformedData,
			"persisted document has no books array")
	}

	return doc.Books, true, nil
}

// Save overwrites the document with the full collection.
func (f *FileBackend) Save(books []models.Book) error {
	if books == nil {
		books = []models.Book{}
	}
	data, err := json.MarshalIndent(document{Books: books}, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, "encode collection", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable,
			"cannot write persisted collection", err)
	}
	return nil
}

// Close implements Backend. File handles are not held between calls.
func (f *FileBackend) Close() error {
	return nil
}
