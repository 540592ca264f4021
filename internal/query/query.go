// Package query derives filtered, sorted and aggregated projections of a
// book collection snapshot. Every function is pure: nothing here mutates
// the input or touches persistence.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shelfmark/backend/internal/models"
)

// SortKey selects the field a listing is ordered by.
type SortKey string

const (
	SortByDateAdded SortKey = "dateAdded"
	SortByTitle     SortKey = "title"
	SortByAuthor    SortKey = "author"
	SortByPages     SortKey = "pages"
	SortByRating    SortKey = "rating"
	SortByDateRead  SortKey = "dateRead"
)

// Order is the sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Filter returns the books matching the search term and genre. The term
// is a case-insensitive substring match against title, author or genre;
// the genre filter is an exact match. Either being empty matches all.
func Filter(books []models.Book, term, genre string) []models.Book {
	term = strings.ToLower(term)

	matched := make([]models.Book, 0, len(books))
	for _, b := range books {
		if term != "" &&
			!strings.Contains(strings.ToLower(b.Title), term) &&
			!strings.Contains(strings.ToLower(b.Author), term) &&
			!strings.Contains(strings.ToLower(b.Genre), term) {
			continue
		}
		if genre != "" && b.Genre != genre {
			continue
		}
		matched = append(matched, b)
	}
	return matched
}

// Sort returns a new slice ordered by key and order. String keys compare
// case-insensitively with locale-aware collation; numeric and date keys
// compare numerically (absent rating sorts as 0, absent dateRead as the
// epoch). The sort is stable: ties keep their prior relative order.
func Sort(books []models.Book, key SortKey, order Order) []models.Book {
	sorted := append([]models.Book(nil), books...)

	var less func(a, b *models.Book) bool
	switch key {
	case SortByTitle, SortByAuthor:
		// Collators are stateful, so build one per call rather than
		// sharing across goroutines.
		col := collate.New(language.Und, collate.IgnoreCase)
		field := func(b *models.Book) string { return b.Title }
		if key == SortByAuthor {
			field = func(b *models.Book) string { return b.Author }
		}
		less = func(a, b *models.Book) bool {
			return col.CompareString(field(a), field(b)) < 0
		}
	case SortByPages:
		less = func(a, b *models.Book) bool { return a.Pages < b.Pages }
	case SortByRating:
		less = func(a, b *models.Book) bool { return a.Rating < b.Rating }
	case SortByDateRead:
		less = func(a, b *models.Book) bool {
			return a.DateReadTime().Before(b.DateReadTime())
		}
	default:
		less = func(a, b *models.Book) bool {
			return a.DateAddedTime().Before(b.DateAddedTime())
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == Descending {
			return less(&sorted[j], &sorted[i])
		}
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}

// Genres returns the distinct genres present, alphabetically sorted.
func Genres(books []models.Book) []string {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, b := range books {
		if !seen[b.Genre] {
			seen[b.Genre] = true
			genres = append(genres, b.Genre)
		}
	}
	sort.Strings(genres)
	return genres
}

// Stats holds the dashboard aggregate counters.
type Stats struct {
	Total         int     `json:"total"`
	Read          int     `json:"read"`
	ToRead        int     `json:"toRead"`
	TotalPages    int     `json:"totalPages"`
	ReadPages     int     `json:"readPages"`
	AverageRating float64 `json:"averageRating"`
}

// ComputeStats aggregates the collection. Unrated records are excluded
// from the rating mean entirely, not counted as zero.
func ComputeStats(books []models.Book) Stats {
	var stats Stats
	stats.Total = len(books)

	var ratingSum, ratingCount int
	for _, b := range books {
		stats.TotalPages += b.Pages
		if b.Status == models.StatusRead {
			stats.Read++
			stats.ReadPages += b.Pages
		} else {
			stats.ToRead++
		}
		if b.Rating > 0 {
			ratingSum += b.Rating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		stats.AverageRating = float64(ratingSum) / float64(ratingCount)
	}
	return stats
}

// RecentlyRead returns up to three read books, most recently read first.
// Ordering prefers the exact transition timestamp and falls back to the
// calendar dateRead when the timestamp is absent.
func RecentlyRead(books []models.Book) []models.Book {
	read := make([]models.Book, 0)
	for _, b := range books {
		if b.Status == models.StatusRead && (b.DateReadTimestamp != "" || b.DateRead != "") {
			read = append(read, b)
		}
	}
	sort.SliceStable(read, func(i, j int) bool {
		return read[j].ReadInstant().Before(read[i].ReadInstant())
	})
	return top(read, 3)
}

// UpNext returns up to three to-read books, most recently added first.
func UpNext(books []models.Book) []models.Book {
	next := make([]models.Book, 0)
	for _, b := range books {
		if b.Status == models.StatusToRead {
			next = append(next, b)
		}
	}
	sort.SliceStable(next, func(i, j int) bool {
		return next[j].DateAddedTime().Before(next[i].DateAddedTime())
	})
	return top(next, 3)
}

func top(books []models.Book, n int) []models.Book {
	if len(books) > n {
		return books[:n]
	}
	return books
}
