// Package store owns the book collection: it loads the persisted
// document, applies mutations to the resident copy and writes the whole
// collection back on every change.
package store

import "github.com/shelfmark/backend/internal/models"

// Backend persists the full collection as one aggregate. Load and Save
// always move the entire collection; there is no partial update.
type Backend interface {
	// Load reads the persisted collection. found is false when no
	// document has been written yet. A document that fails to parse or
	// does not match the expected shape yields a MALFORMED_DATA error.
	Load() (books []models.Book, found bool, err error)

	// Save overwrites the persisted collection.
	Save(books []models.Book) error

	// Close releases the underlying medium.
	Close() error
}
