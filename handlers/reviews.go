package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bookreviews/middleware"
	"bookreviews/models"
	"bookreviews/store"
)

// ReviewsHandler owns the authorized review mutations. The auth middleware
// has already verified the token by the time these run; the username comes
// from its claims, with the session binding as fallback.
type ReviewsHandler struct {
	Catalog *store.Catalog
}

type reviewRequest struct {
	Review *string `json:"review"`
	Rating *int    `json:"rating"`
}

type reviewsResponse struct {
	Message string                   `json:"message"`
	Reviews map[string]models.Review `json:"reviews"`
}

// Upsert replaces the caller's review entry on the book with exactly the
// submitted fields. Review text may come from the ?review= query (which wins)
// or the body; rating only from the body. Submitting only a rating after a
// text review drops the text: replace-not-merge is the contract.
func (h *ReviewsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	username, ok := actingUsername(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "User not logged in")
		return
	}
	isbn := urlParam(r, "isbn")

	var body reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var review models.Review
	if q := r.URL.Query().Get("review"); q != "" {
		review.Text = &q
	} else if body.Review != nil && *body.Review != "" {
		review.Text = body.Review
	}
	review.Rating = body.Rating

	if review.Text == nil && review.Rating == nil {
		writeMessage(w, http.StatusBadRequest, "Provide review (query or body) or rating in body")
		return
	}

	reviews, err := h.Catalog.UpsertReview(isbn, username, review)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Book not found")
		return
	}
	writeJSON(w, http.StatusOK, reviewsResponse{
		Message: "Review added/updated",
		Reviews: reviews,
	})
}

// Delete removes the caller's review entry from the book.
func (h *ReviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username, ok := actingUsername(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "User not logged in")
		return
	}
	isbn := urlParam(r, "isbn")

	reviews, err := h.Catalog.DeleteReview(isbn, username)
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			writeMessage(w, http.StatusNotFound, "Review by user not found")
			return
		}
		writeMessage(w, http.StatusNotFound, "Book not found")
		return
	}
	writeJSON(w, http.StatusOK, reviewsResponse{
		Message: "Review deleted",
		Reviews: reviews,
	})
}

func actingUsername(r *http.Request) (string, bool) {
	if name, ok := middleware.UsernameFromContext(r.Context()); ok && name != "" {
		return name, true
	}
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		if sess.Authorization != nil && sess.Authorization.Username != "" {
			return sess.Authorization.Username, true
		}
	}
	return "", false
}
