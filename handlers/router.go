package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bookreviews/config"
	"bookreviews/middleware"
	"bookreviews/session"
	"bookreviews/store"
)

// NewRouter wires the full HTTP surface. Sessions exist only under /customer;
// the token gate only under /customer/auth. The /async routes are aliases of
// the sync catalog queries.
func NewRouter(cfg *config.Config, catalog *store.Catalog, users *store.Registry, sessions session.Store) http.Handler {
	books := &BooksHandler{Catalog: catalog}
	auth := &AuthHandler{
		Users:     users,
		Sessions:  sessions,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}
	reviews := &ReviewsHandler{Catalog: catalog}

	r := chi.NewRouter()
	r.Use(middleware.AllowAll())
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", Health)

	r.Get("/", books.List)
	r.Get("/isbn/{isbn}", books.GetByISBN)
	r.Get("/author/{author}", books.GetByAuthor)
	r.Get("/title/{title}", books.GetByTitle)
	r.Get("/review/{isbn}", books.GetReviews)

	r.Route("/async", func(r chi.Router) {
		r.Get("/books", books.List)
		r.Get("/isbn/{isbn}", books.GetByISBN)
		r.Get("/author/{author}", books.GetByAuthor)
		r.Get("/title/{title}", books.GetByTitle)
	})

	r.Route("/customer", func(r chi.Router) {
		r.Use(middleware.Sessions(sessions))
		r.Post("/register", auth.Register)
		r.Post("/login", auth.Login)
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))
			r.Put("/review/{isbn}", reviews.Upsert)
			r.Delete("/review/{isbn}", reviews.Delete)
		})
	})

	return r
}
