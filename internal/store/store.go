package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "github.com/shelfmark/backend/internal/errors"
	"github.com/shelfmark/backend/internal/logging"
	"github.com/shelfmark/backend/internal/models"
	"github.com/shelfmark/backend/internal/uuid"
)

// Store owns the resident collection. All mutating operations run as one
// atomic load-modify-persist unit under the write lock; reads observe a
// consistent snapshot under the read lock. Construct with New and pass
// the instance to whoever needs it; there is no package-level store.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	books   []models.Book

	seedOnEmpty bool
	initialized bool
}

// New creates a Store over the given backend. seedOnEmpty controls
// whether a missing document is seeded with the sample collection.
func New(backend Backend, seedOnEmpty bool) *Store {
	return &Store{
		backend:     backend,
		seedOnEmpty: seedOnEmpty,
	}
}

// Initialize loads the persisted collection into memory. Idempotent.
// A missing document is seeded (per seedOnEmpty) and persisted
// immediately; a malformed document is logged and treated as missing.
// Only an unreachable storage medium makes Initialize fail.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	books, found, err := s.backend.Load()
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrMalformedData) {
			return err
		}
		logging.Warn("persisted collection is malformed, reseeding",
			map[string]interface{}{"error": err.Error()})
		found = false
	}

	if !found {
		books = []models.Book{}
		if s.seedOnEmpty {
			books = SampleBooks()
		}
		if err := s.backend.Save(books); err != nil {
			return err
		}
	}

	s.books = books
	s.initialized = true

	logging.Info("collection loaded", map[string]interface{}{"count": len(books)})
	return nil
}

// List returns a snapshot of the full collection. The returned slice is
// a copy; mutating it cannot corrupt the resident collection.
func (s *Store) List() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Book(nil), s.books...)
}

// Add validates the candidate, materializes a new record and appends it
// to the end of the collection. Returns the record as persisted.
func (s *Store) Add(in models.BookInput) (models.Book, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return models.Book{}, apperrors.Validation(errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if !status.IsValid() {
		status = models.StatusToRead
	}

	now := time.Now()
	book := models.Book{
		ID:         s.freshIDLocked(),
		Title:      strings.TrimSpace(in.Title),
		Author:     strings.TrimSpace(in.Author),
		Genre:      strings.TrimSpace(in.Genre),
		Pages:      in.Pages,
		Status:     status,
		Rating:     in.Rating,
		Summary:    in.Summary,
		Quotes:     in.Quotes,
		DateAdded:  now.Format(models.DateLayout),
		DateRead:   in.DateRead,
		CoverColor: models.RandomCoverColor(),
		ImageURL:   in.ImageURL,
	}
	if book.ImageURL == "" {
		book.ImageURL = models.RandomStockImage()
	}
	if status == models.StatusRead {
		book.DateReadTimestamp = now.UTC().Format(time.RFC3339)
	}

	s.books = append(s.books, book)
	if err := s.backend.Save(s.books); err != nil {
		s.books = s.books[:len(s.books)-1]
		return models.Book{}, err
	}

	logging.Info("book added", map[string]interface{}{"id": book.ID, "title": book.Title})
	return book, nil
}

// Update merges the patch onto the record with the given id, applies the
// status-transition rules and persists the collection.
func (s *Store) Update(id string, patch models.BookPatch) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(id, patch, false)
}

// Delete removes the record with the given id if present. Idempotent:
// deleting an absent id succeeds.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prior := s.books
	kept := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}

	s.books = kept
	if err := s.backend.Save(s.books); err != nil {
		s.books = prior
		return err
	}
	return nil
}

// MarkAsRead transitions the record to read as of now. Unlike a plain
// status update, it always stamps a fresh dateReadTimestamp, even when
// one is already present. A nil rating or summary clears the field.
func (s *Store) MarkAsRead(id string, rating *int, summary *string) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	read := models.StatusRead
	today := time.Now().Format(models.DateLayout)

	r := 0
	if rating != nil {
		r = *rating
	}
	sum := ""
	if summary != nil {
		sum = *summary
	}

	patch := models.BookPatch{
		Status:   &read,
		DateRead: &today,
		Rating:   &r,
		Summary:  &sum,
	}
	return s.updateLocked(id, patch, true)
}

// MarkAsToRead transitions the record back to to-read. The transition
// rule clears rating, dateRead and dateReadTimestamp.
func (s *Store) MarkAsToRead(id string) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	toRead := models.StatusToRead
	return s.updateLocked(id, models.BookPatch{Status: &toRead}, false)
}

// Replace swaps in a full record keyed by its id and persists. Absent
// ids are a silent no-op, mirroring the whole-record update surface of
// the transport channel.
func (s *Store) Replace(book models.Book) error {
	if errs := book.Validate(); len(errs) > 0 {
		return apperrors.Validation(errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(book.ID)
	if idx < 0 {
		return s.backend.Save(s.books)
	}

	prior := s.books[idx]
	s.books[idx] = book
	if err := s.backend.Save(s.books); err != nil {
		s.books[idx] = prior
		return err
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// updateLocked merges, applies transition rules, persists. restamp forces
// a fresh dateReadTimestamp on a read transition even when one exists;
// the general update path stamps only when the timestamp was absent.
func (s *Store) updateLocked(id string, patch models.BookPatch, restamp bool) (models.Book, error) {
	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Book{}, apperrors.New(apperrors.ErrBookNotFound,
			fmt.Sprintf("no book with id %s", id))
	}

	prior := s.books[idx]
	merged := prior
	patch.Apply(&merged)

	if errs := merged.Validate(); len(errs) > 0 {
		return models.Book{}, apperrors.Validation(errs)
	}

	if patch.Status != nil {
		switch *patch.Status {
		case models.StatusRead:
			if prior.DateReadTimestamp == "" || restamp {
				merged.DateReadTimestamp = time.Now().UTC().Format(time.RFC3339)
			}
		case models.StatusToRead:
			merged.Rating = 0
			merged.DateRead = ""
			merged.DateReadTimestamp = ""
		}
	}

	s.books[idx] = merged
	if err := s.backend.Save(s.books); err != nil {
		s.books[idx] = prior
		return models.Book{}, err
	}
	return merged, nil
}

// indexLocked returns the position of id in the collection, or -1.
func (s *Store) indexLocked(id string) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// freshIDLocked rolls ids until one is unused. A collision is
// practically impossible but the re-roll keeps uniqueness strict.
func (s *Store) freshIDLocked() string {
	for {
		id := uuid.New()
		if s.indexLocked(id) < 0 {
			return id
		}
	}
}
