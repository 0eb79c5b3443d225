package models

// Book is a catalog record. The ISBN is the catalog key and is never part of
// the book's wire representation; clients already hold it when they ask.
type Book struct {
	ISBN    string            `json:"-"`
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Reviews map[string]Review `json:"reviews"`
}

// Review is one user's entry on a book. Both fields are optional and an
// upsert replaces the whole entry, so a field left out of the latest
// submission does not appear in the JSON at all.
type Review struct {
	Text   *string `json:"review,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}
