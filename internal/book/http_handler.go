package book

import (
	"errors"
	"net/http"
	"strconv"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /v1/library
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err, "list books")
		return
	}
	httpx.JSON(w, r, http.StatusOK, books)
}

// Search handles GET /v1/library/books/search?titulo=&autor=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	books, err := h.service.SearchBooks(r.Context(), query.Get("titulo"), query.Get("autor"))
	if err != nil {
		httpx.InternalError(w, r, err, "search books")
		return
	}
	httpx.JSON(w, r, http.StatusOK, books)
}

// ByGenre handles GET /v1/library/books/genre?genre=
func (h *HTTPHandler) ByGenre(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	genre := query.Get("genre")
	if genre == "" {
		genre = query.Get("genero")
	}

	if genre == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing genre parameter", []httpx.ErrorDetail{
			{Field: "genre", Message: "genre is required"},
		})
		return
	}

	books, err := h.service.FilterBooksByGenre(r.Context(), genre)
	if err != nil {
		httpx.InternalError(w, r, err, "filter books by genre")
		return
	}
	httpx.JSON(w, r, http.StatusOK, books)
}

// GetByID handles GET /v1/library/books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id", []httpx.ErrorDetail{
			{Field: "id", Message: "id must be an integer"},
		})
		return
	}

	b, err := h.service.FindBookByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		httpx.InternalError(w, r, err, "find book")
		return
	}
	httpx.JSON(w, r, http.StatusOK, b)
}
