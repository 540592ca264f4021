// Package models provides data model definitions for the Shelfmark backend.
package models

import (
	"strings"
	"time"
)

// Status represents the reading state of a book.
type Status string

const (
	// StatusToRead marks a book the user intends to read.
	StatusToRead Status = "to-read"
	// StatusRead marks a book the user has finished.
	StatusRead Status = "read"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusToRead || s == StatusRead
}

// DateLayout is the calendar-date form used for dateAdded and dateRead.
const DateLayout = "2006-01-02"

// Book represents one cataloged book record.
//
// Rating, Summary, Quotes, DateRead, DateReadTimestamp and ImageURL are
// optional; the zero value means "absent" and is omitted from JSON.
// Rating never takes the value 0 when present (valid range is 1-5).
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Pages  int    `json:"pages"`
	Status Status `json:"status"`
	Rating int    `json:"rating,omitempty"`

	// Summary is free text; Quotes is free text holding one quotation
	// per line.
	Summary string `json:"summary,omitempty"`
	Quotes  string `json:"quotes,omitempty"`

	// DateAdded is set once at creation and never mutated.
	DateAdded string `json:"dateAdded"`
	// DateRead is the user-editable "as of" calendar date.
	DateRead string `json:"dateRead,omitempty"`
	// DateReadTimestamp is the exact instant of the most recent
	// transition into the read status (RFC 3339).
	DateReadTimestamp string `json:"dateReadTimestamp,omitempty"`

	// CoverColor and ImageURL are cosmetic only. CoverColor is assigned
	// once at creation and never changes.
	CoverColor string `json:"coverColor"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// DateAddedTime returns DateAdded parsed as a time.Time.
// Returns the zero time when the field does not parse.
func (b *Book) DateAddedTime() time.Time {
	t, _ := time.Parse(DateLayout, b.DateAdded)
	return t
}

// DateReadTime returns DateRead parsed as a time.Time.
// Returns the zero time when the field is absent or does not parse.
func (b *Book) DateReadTime() time.Time {
	t, _ := time.Parse(DateLayout, b.DateRead)
	return t
}

// ReadInstant returns the best-known moment the book was read: the exact
// transition timestamp when present, otherwise the calendar dateRead.
func (b *Book) ReadInstant() time.Time {
	if b.DateReadTimestamp != "" {
		if t, err := time.Parse(time.RFC3339, b.DateReadTimestamp); err == nil {
			return t
		}
	}
	return b.DateReadTime()
}

// BookInput holds the fields a caller supplies when creating a book.
// ID, DateAdded and CoverColor are assigned by the store on creation.
type BookInput struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Genre    string `json:"genre"`
	Pages    int    `json:"pages"`
	Status   Status `json:"status"`
	Rating   int    `json:"rating,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Quotes   string `json:"quotes,omitempty"`
	DateRead string `json:"dateRead,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// BookPatch holds the fields a caller may supply when partially updating a
// book. Every field is a pointer so a nil field means "leave untouched"
// while a pointer to the zero value clears the field. ID, DateAdded and
// CoverColor are write-once and cannot appear in a patch; DateReadTimestamp
// is managed by the store's transition rules.
type BookPatch struct {
	Title    *string `json:"title,omitempty"`
	Author   *string `json:"author,omitempty"`
	Genre    *string `json:"genre,omitempty"`
	Pages    *int    `json:"pages,omitempty"`
	Status   *Status `json:"status,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	Quotes   *string `json:"quotes,omitempty"`
	DateRead *string `json:"dateRead,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// Apply merges the patch onto b field by field. Nil fields are skipped.
// Derived-field rules (timestamp stamping and clearing) are the store's
// responsibility, not Apply's.
func (p *BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Rating != nil {
		b.Rating = *p.Rating
	}
	if p.Summary != nil {
		b.Summary = *p.Summary
	}
	if p.Quotes != nil {
		b.Quotes = *p.Quotes
	}
	if p.DateRead != nil {
		b.DateRead = *p.DateRead
	}
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
}

// ValidateFields checks the required book fields and returns a map of field
// name to error message. An empty map means the fields are valid.
func ValidateFields(title, author, genre string, pages int) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(author) == "" {
		errs["author"] = "Author is required"
	}
	if strings.TrimSpace(genre) == "" {
		errs["genre"] = "Genre is required"
	}
	if pages <= 0 {
		errs["pages"] = "Valid page count is required"
	}
	return errs
}

// Validate checks the input per ValidateFields.
func (in *BookInput) Validate() map[string]string {
	return ValidateFields(in.Title, in.Author, in.Genre, in.Pages)
}

// Validate checks the record per ValidateFields.
func (b *Book) Validate() map[string]string {
	return ValidateFields(b.Title, b.Author, b.Genre, b.Pages)
}
