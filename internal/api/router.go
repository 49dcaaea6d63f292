package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"disneycatalog/internal/api/handlers"
	"disneycatalog/internal/auth"
	"disneycatalog/internal/services"
	"disneycatalog/internal/upload"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.Auth,
	uploads *upload.Store,
	authService services.AuthServiceProvider,
	characterService services.CharacterServiceProvider,
	filmService services.FilmServiceProvider,
	genreService services.GenreServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	characterHandler := handlers.NewCharacterHandler(characterService, uploads)
	filmHandler := handlers.NewFilmHandler(filmService, uploads)
	genreHandler := handlers.NewGenreHandler(genreService, uploads)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Uploaded image assets
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	// Catalog routes require a valid access token
	r.Group(func(r chi.Router) {
		r.Use(tokens.Middleware())

		r.Route("/characters", func(r chi.Router) {
			r.Get("/", characterHandler.Search)
			r.Post("/", characterHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", characterHandler.Get)
				r.Patch("/", characterHandler.Update)
				r.Delete("/", characterHandler.Delete)
			})
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", filmHandler.Search)
			r.Post("/", filmHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", filmHandler.Get)
				r.Patch("/", filmHandler.Update)
				r.Delete("/", filmHandler.Delete)
			})
		})

		r.Route("/genres", func(r chi.Router) {
			r.Get("/", genreHandler.GetAll)
			r.Post("/", genreHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", genreHandler.Get)
				r.Patch("/", genreHandler.Update)
				r.Delete("/", genreHandler.Delete)
			})
		})
	})

	return r
}
