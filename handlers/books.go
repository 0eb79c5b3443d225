package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"bookreviews/store"
)

// urlParam returns a route parameter with percent-escapes decoded; authors
// and titles routinely contain spaces.
func urlParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}

// BooksHandler serves the read-only catalog queries. The /async routes reuse
// these handlers unchanged: both entry points must produce byte-identical
// payloads, so there is exactly one implementation.
type BooksHandler struct {
	Catalog *store.Catalog
}

func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	writeIndented(w, h.Catalog.All())
}

func (h *BooksHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := urlParam(r, "isbn")
	if isbn == "" {
		writeMessage(w, http.StatusBadRequest, "ISBN required")
		return
	}
	book, err := h.Catalog.Get(isbn)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Book not found for ISBN: "+isbn)
		return
	}
	writeIndented(w, book)
}

func (h *BooksHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	author := urlParam(r, "author")
	if author == "" {
		writeMessage(w, http.StatusBadRequest, "Author required")
		return
	}
	books, err := h.Catalog.ByAuthor(author)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "No books found for author: "+author)
		return
	}
	writeIndented(w, books)
}

func (h *BooksHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := urlParam(r, "title")
	if title == "" {
		writeMessage(w, http.StatusBadRequest, "Title required")
		return
	}
	books, err := h.Catalog.ByTitle(title)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "No books found for title: "+title)
		return
	}
	writeIndented(w, books)
}

func (h *BooksHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	isbn := urlParam(r, "isbn")
	reviews, err := h.Catalog.Reviews(isbn)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Book not found for ISBN: "+isbn)
		return
	}
	writeIndented(w, reviews)
}
