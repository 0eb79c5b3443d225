package store

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"bookreviews/models"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
)

// Catalog is the in-memory book store. Books are fixed for the life of the
// process; only their review maps mutate. The lock makes the single-writer
// assumption explicit since the HTTP server handles requests in parallel.
type Catalog struct {
	mu    sync.RWMutex
	books map[string]*models.Book
}

func NewCatalog() *Catalog {
	return &Catalog{books: seedBooks()}
}

func seedBooks() map[string]*models.Book {
	list := []models.Book{
		{ISBN: "1", Author: "Chinua Achebe", Title: "Things Fall Apart"},
		{ISBN: "2", Author: "Hans Christian Andersen", Title: "Fairy tales"},
		{ISBN: "3", Author: "Dante Alighieri", Title: "The Divine Comedy"},
		{ISBN: "4", Author: "Unknown", Title: "The Epic Of Gilgamesh"},
		{ISBN: "5", Author: "Unknown", Title: "The Book Of Job"},
		{ISBN: "6", Author: "Unknown", Title: "One Thousand and One Nights"},
		{ISBN: "7", Author: "Unknown", Title: "Njál's Saga"},
		{ISBN: "8", Author: "Jane Austen", Title: "Pride and Prejudice"},
		{ISBN: "9", Author: "Honoré de Balzac", Title: "Le Père Goriot"},
		{ISBN: "10", Author: "Samuel Beckett", Title: "Molloy, Malone Dies, The Unnamable, the trilogy"},
	}
	books := make(map[string]*models.Book, len(list))
	for i := range list {
		b := list[i]
		b.Reviews = map[string]models.Review{}
		books[b.ISBN] = &b
	}
	return books
}

// All returns a snapshot of the full catalog keyed by ISBN. Callers can
// marshal or mutate the result without holding the lock.
func (c *Catalog) All() map[string]*models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]*models.Book, len(c.books))
	for isbn, b := range c.books {
		out[isbn] = copyBook(b)
	}
	return out
}

func (c *Catalog) Get(isbn string) (*models.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return copyBook(b), nil
}

// ByAuthor returns books whose author equals the query ignoring case. The
// match is against the full author string; substrings do not match.
func (c *Catalog) ByAuthor(author string) ([]*models.Book, error) {
	return c.matching(func(b *models.Book) bool {
		return strings.EqualFold(b.Author, author)
	})
}

// ByTitle is the title counterpart of ByAuthor, same matching rules.
func (c *Catalog) ByTitle(title string) ([]*models.Book, error) {
	return c.matching(func(b *models.Book) bool {
		return strings.EqualFold(b.Title, title)
	})
}

func (c *Catalog) matching(pred func(*models.Book) bool) ([]*models.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	isbns := make([]string, 0, len(c.books))
	for isbn := range c.books {
		isbns = append(isbns, isbn)
	}
	sort.Strings(isbns)
	var matched []*models.Book
	for _, isbn := range isbns {
		if b := c.books[isbn]; pred(b) {
			matched = append(matched, copyBook(b))
		}
	}
	if len(matched) == 0 {
		return nil, ErrBookNotFound
	}
	return matched, nil
}

// Reviews returns the review map for a book. A known book with no reviews
// yields an empty map, not an error.
func (c *Catalog) Reviews(isbn string) (map[string]models.Review, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return copyReviews(b.Reviews), nil
}

// UpsertReview replaces username's review entry on the book with exactly the
// given review. Replace, not merge: fields absent from this submission are
// gone afterwards even if an earlier submission set them. Returns the updated
// review map.
func (c *Catalog) UpsertReview(isbn, username string, review models.Review) (map[string]models.Review, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	b.Reviews[username] = review
	return copyReviews(b.Reviews), nil
}

// DeleteReview removes username's review entry. ErrReviewNotFound when the
// user has no review on that book; the map is untouched on any error.
func (c *Catalog) DeleteReview(isbn, username string) (map[string]models.Review, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	if _, ok := b.Reviews[username]; !ok {
		return nil, ErrReviewNotFound
	}
	delete(b.Reviews, username)
	return copyReviews(b.Reviews), nil
}

func copyBook(b *models.Book) *models.Book {
	cp := *b
	cp.Reviews = copyReviews(b.Reviews)
	return &cp
}

func copyReviews(reviews map[string]models.Review) map[string]models.Review {
	out := make(map[string]models.Review, len(reviews))
	for user, r := range reviews {
		out[user] = r
	}
	return out
}
