// Package handlers provides the localhost REST surface the UI process
// talks to. Handlers relay requests to the store and queries without
// business logic of their own.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/shelfmark/backend/internal/errors"
	"github.com/shelfmark/backend/internal/images"
	"github.com/shelfmark/backend/internal/models"
	"github.com/shelfmark/backend/internal/query"
	"github.com/shelfmark/backend/internal/store"
)

// BookHandler handles book collection operations.
type BookHandler struct {
	store *store.Store
}

// NewBookHandler creates a new BookHandler over the given store.
func NewBookHandler(s *store.Store) *BookHandler {
	return &BookHandler{store: s}
}

// Routes mounts the handler's endpoints on r.
func (h *BookHandler) Routes(r chi.Router) {
	r.Get("/books", h.ListBooks)
	r.Post("/books", h.AddBook)
	r.Put("/books/{id}", h.ReplaceBook)
	r.Patch("/books/{id}", h.UpdateBook)
	r.Delete("/books/{id}", h.DeleteBook)
	r.Post("/books/{id}/read", h.MarkAsRead)
	r.Post("/books/{id}/to-read", h.MarkAsToRead)
	r.Get("/genres", h.ListGenres)
	r.Get("/dashboard", h.Dashboard)
	r.Post("/images", h.EncodeImage)
}

// ListBooks handles GET /books. Optional query parameters apply the
// search/genre filter and sorting before the collection is returned.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books := h.store.List()

	q := r.URL.Query()
	if term, genre := q.Get("search"), q.Get("genre"); term != "" || genre != "" {
		books = query.Filter(books, term, genre)
	}
	if sortBy := q.Get("sortBy"); sortBy != "" {
		order := query.Order(q.Get("order"))
		if order != query.Descending {
			order = query.Ascending
		}
		books = query.Sort(books, query.SortKey(sortBy), order)
	}

	writeJSON(w, http.StatusOK, books)
}

// AddBook handles POST /books.
func (h *BookHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperrors.New(apperrors.ErrInvalid, "invalid request body"))
		return
	}

	book, err := h.store.Add(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

// ReplaceBook handles PUT /books/{id}: a whole-record update. The id in
// the path wins over any id in the body.
func (h *BookHandler) ReplaceBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, apperrors.New(apperrors.ErrInvalid, "invalid request body"))
		return
	}
	book.ID = chi.URLParam(r, "id")

	if err := h.store.Replace(book); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateBook handles PATCH /books/{id}: a partial field merge.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var patch models.BookPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, apperrors.New(apperrors.ErrInvalid, "invalid request body"))
		return
	}

	book, err := h.store.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// DeleteBook handles DELETE /books/{id}. Always succeeds: deletion is
// idempotent and an absent id is not an error.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// markAsReadRequest is the body of POST /books/{id}/read. Omitted rating
// and summary clear any prior values, matching the transition contract.
type markAsReadRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

// MarkAsRead handles POST /books/{id}/read.
func (h *BookHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	var req markAsReadRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.New(apperrors.ErrInvalid, "invalid request body"))
			return
		}
	}

	book, err := h.store.MarkAsRead(chi.URLParam(r, "id"), req.Rating, req.Summary)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// MarkAsToRead handles POST /books/{id}/to-read.
func (h *BookHandler) MarkAsToRead(w http.ResponseWriter, r *http.Request) {
	book, err := h.store.MarkAsToRead(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// ListGenres handles GET /genres: the distinct genres present, used to
// populate the filter choices.
func (h *BookHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, query.Genres(h.store.List()))
}

// dashboardResponse bundles the aggregates the dashboard view renders.
type dashboardResponse struct {
	Stats        query.Stats   `json:"stats"`
	RecentlyRead []models.Book `json:"recentlyRead"`
	UpNext       []models.Book `json:"upNext"`
}

// Dashboard handles GET /dashboard.
func (h *BookHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	books := h.store.List()
	writeJSON(w, http.StatusOK, dashboardResponse{
		Stats:        query.ComputeStats(books),
		RecentlyRead: query.RecentlyRead(books),
		UpNext:       query.UpNext(books),
	})
}

// EncodeImage handles POST /images: validates an uploaded cover and
// returns it as a data URI the UI then submits as imageUrl.
func (h *BookHandler) EncodeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, images.MaxUploadBytes+1)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, apperrors.New(apperrors.ErrImageTooLarge,
			"Image size must be less than 5MB"))
		return
	}

	uri, err := images.DataURI(data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"dataUri": uri})
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    apperrors.ErrorCode `json:"code"`
	Message string              `json:"message"`
	Fields  map[string]string   `json:"fields,omitempty"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an error to a status code and JSON body, preserving
// the store's failure semantics across the transport boundary.
func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Code: apperrors.ErrInternal, Message: err.Error()}
	status := http.StatusInternalServerError

	if appErr, ok := err.(*apperrors.AppError); ok {
		resp.Code = appErr.Code
		resp.Message = appErr.Message
		resp.Fields = appErr.Fields

		switch appErr.Code {
		case apperrors.ErrValidation:
			status = http.StatusUnprocessableEntity
		case apperrors.ErrBookNotFound, apperrors.ErrNotFound:
			status = http.StatusNotFound
		case apperrors.ErrInvalid, apperrors.ErrImageInvalid:
			status = http.StatusBadRequest
		case apperrors.ErrImageTooLarge:
			status = http.StatusRequestEntityTooLarge
		}
	}

	writeJSON(w, status, resp)
}
