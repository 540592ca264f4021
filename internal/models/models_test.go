// Package models tests for data model definitions.
package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// =====================================================
// Validation Tests
// =====================================================

// TestBookInput_Validate_valid verifies a complete input passes.
func TestBookInput_Validate_valid(t *testing.T) {
	in := BookInput{
		Title:  "Dune",
		Author: "Frank Herbert",
		Genre:  "Science Fiction",
		Pages:  688,
		Status: StatusToRead,
	}

	errs := in.Validate()
	if len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

// TestBookInput_Validate_missingFields verifies each required field is
// reported under its own key.
func TestBookInput_Validate_missingFields(t *testing.T) {
	tests := []struct {
		name     string
		input    BookInput
		wantKeys []string
	}{
		{
			name:     "empty title",
			input:    BookInput{Title: "", Author: "a", Genre: "g", Pages: 1},
			wantKeys: []string{"title"},
		},
		{
			name:     "whitespace title",
			input:    BookInput{Title: "   ", Author: "a", Genre: "g", Pages: 1},
			wantKeys: []string{"title"},
		},
		{
			name:     "empty author",
			input:    BookInput{Title: "t", Author: "", Genre: "g", Pages: 1},
			wantKeys: []string{"author"},
		},
		{
			name:     "empty genre",
			input:    BookInput{Title: "t", Author: "a", Genre: "", Pages: 1},
			wantKeys: []string{"genre"},
		},
		{
			name:     "zero pages",
			input:    BookInput{Title: "t", Author: "a", Genre: "g", Pages: 0},
			wantKeys: []string{"pages"},
		},
		{
			name:     "negative pages",
			input:    BookInput{Title: "t", Author: "a", Genre: "g", Pages: -5},
			wantKeys: []string{"pages"},
		},
		{
			name:     "everything missing",
			input:    BookInput{},
			wantKeys: []string{"title", "author", "genre", "pages"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.input.Validate()
			if len(errs) != len(tt.wantKeys) {
				t.Fatalf("Validate() returned %d errors %v, want %d", len(errs), errs, len(tt.wantKeys))
			}
			for _, key := range tt.wantKeys {
				if msg, ok := errs[key]; !ok || msg == "" {
					t.Errorf("Validate() missing error for field %q", key)
				}
			}
		})
	}
}

// =====================================================
// Patch Tests
// =====================================================

// TestBookPatch_Apply_partial verifies nil fields leave the record untouched.
func TestBookPatch_Apply_partial(t *testing.T) {
	book := Book{
		ID:         "abc",
		Title:      "Dune",
		Author:     "Frank Herbert",
		Genre:      "Science Fiction",
		Pages:      688,
		Status:     StatusToRead,
		DateAdded:  "2024-01-10",
		CoverColor: CoverColors[1],
	}

	newTitle := "Dune Messiah"
	patch := BookPatch{Title: &newTitle}
	patch.Apply(&book)

	if book.Title != "Dune Messiah" {
		t.Errorf("Title = %q, want 'Dune Messiah'", book.Title)
	}
	if book.Author != "Frank Herbert" || book.Pages != 688 {
		t.Errorf("untouched fields changed: %+v", book)
	}
}

// TestBookPatch_Apply_clear verifies a pointer to the zero value clears
// the field rather than skipping it.
func TestBookPatch_Apply_clear(t *testing.T) {
	book := Book{Rating: 4, Summary: "great", DateRead: "2024-01-20"}

	zero := 0
	empty := ""
	patch := BookPatch{Rating: &zero, Summary: &empty, DateRead: &empty}
	patch.Apply(&book)

	if book.Rating != 0 || book.Summary != "" || book.DateRead != "" {
		t.Errorf("fields not cleared: %+v", book)
	}
}

// =====================================================
// Serialization Tests
// =====================================================

// TestBook_JSON_omitsAbsentFields verifies optional zero fields are
// omitted rather than serialized as null or zero.
func TestBook_JSON_omitsAbsentFields(t *testing.T) {
	book := Book{
		ID:         "abc",
		Title:      "Dune",
		Author:     "Frank Herbert",
		Genre:      "Science Fiction",
		Pages:      688,
		Status:     StatusToRead,
		DateAdded:  "2024-01-10",
		CoverColor: CoverColors[1],
	}

	data, err := json.Marshal(&book)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	s := string(data)
	for _, field := range []string{"rating", "summary", "quotes", "dateRead", "dateReadTimestamp", "imageUrl"} {
		if strings.Contains(s, `"`+field+`"`) {
			t.Errorf("Marshal() serialized absent field %q: %s", field, s)
		}
	}
}

// =====================================================
// Date Helper Tests
// =====================================================

// TestBook_ReadInstant_prefersTimestamp verifies the exact timestamp wins
// over the calendar date when both are present.
func TestBook_ReadInstant_prefersTimestamp(t *testing.T) {
	book := Book{
		DateRead:          "2024-01-20",
		DateReadTimestamp: "2024-01-20T14:30:00.000Z",
	}

	want := time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC)
	if got := book.ReadInstant(); !got.Equal(want) {
		t.Errorf("ReadInstant() = %v, want %v", got, want)
	}
}

// TestBook_ReadInstant_fallsBackToDateRead verifies the calendar date is
// used when the timestamp is absent.
func TestBook_ReadInstant_fallsBackToDateRead(t *testing.T) {
	book := Book{DateRead: "2024-01-12"}

	want := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	if got := book.ReadInstant(); !got.Equal(want) {
		t.Errorf("ReadInstant() = %v, want %v", got, want)
	}
}

// =====================================================
// Cover Helper Tests
// =====================================================

// TestRandomCoverColor_fromPalette verifies picks come from the palette.
func TestRandomCoverColor_fromPalette(t *testing.T) {
	valid := make(map[string]bool, len(CoverColors))
	for _, c := range CoverColors {
		valid[c] = true
	}

	for i := 0; i < 50; i++ {
		if c := RandomCoverColor(); !valid[c] {
			t.Fatalf("RandomCoverColor() = %q, not in palette", c)
		}
	}
}

// TestRandomStockImage_fromPool verifies picks come from the stock pool.
func TestRandomStockImage_fromPool(t *testing.T) {
	valid := make(map[string]bool, len(StockImages))
	for _, u := range StockImages {
		valid[u] = true
	}

	for i := 0; i < 50; i++ {
		if u := RandomStockImage(); !valid[u] {
			t.Fatalf("RandomStockImage() = %q, not in pool", u)
		}
	}
}

// TestStockImages_poolSize verifies the fallback pool is large enough to
// vary covers meaningfully.
func TestStockImages_poolSize(t *testing.T) {
	if len(StockImages) < 6 {
		t.Errorf("StockImages has %d entries, want at least 6", len(StockImages))
	}
}
