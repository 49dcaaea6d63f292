package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"disneycatalog/internal/models"
	"disneycatalog/internal/repositories"
	"disneycatalog/internal/services"
	"disneycatalog/internal/upload"
)

// FilmHandler handles HTTP requests for catalog films, exposed under /movies.
type FilmHandler struct {
	service services.FilmServiceProvider
	uploads *upload.Store
}

// NewFilmHandler creates a new FilmHandler.
func NewFilmHandler(service services.FilmServiceProvider, uploads *upload.Store) *FilmHandler {
	return &FilmHandler{service: service, uploads: uploads}
}

// Search lists film summaries matching the query filters, ordered by title.
func (h *FilmHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	films, err := h.service.Search(repositories.FilmSearchParams{
		Title:   q.Get("title"),
		GenreID: q.Get("genre"),
		Order:   q.Get("order"),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to search films")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(w, http.StatusOK, films)
}

// Get retrieves a single film by id.
func (h *FilmHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	film, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrFilmNotFound) {
			respondError(w, http.StatusNotFound, "Film not found")
			return
		}
		log.Error().Err(err).Str("film_id", id).Msg("Failed to get film")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondJSON(w, http.StatusOK, film)
}

// Create stores a new film from a multipart form. Title, release date and a
// rating within [0,5] are required; the characterIds field, even when absent,
// becomes the film's complete association set.
func (h *FilmHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	film := models.Film{
		Title:       r.FormValue("title"),
		ReleaseDate: r.FormValue("releaseDate"),
	}
	ratingStr := r.FormValue("rating")
	if film.Title == "" || film.ReleaseDate == "" || ratingStr == "" {
		respondError(w, http.StatusBadRequest, "Invalid parameters")
		return
	}
	rating, err := strconv.ParseFloat(ratingStr, 64)
	if err != nil || rating < 0 || rating > 5 {
		respondError(w, http.StatusBadRequest, "Invalid parameters")
		return
	}
	film.Rating = rating

	if v := r.FormValue("genreId"); v != "" {
		film.GenreID = &v
	}

	image, err := formImageRef(r, h.uploads)
	if err != nil {
		h.respondUploadError(w, err)
		return
	}
	film.Image = image

	characterIDs, _ := formIDList(r, "characterIds")
	saved, err := h.service.Save(film, &characterIDs)
	if err != nil {
		h.respondSaveError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// Update merges the supplied fields over the stored film. A missing
// characterIds field re-submits the current association set; a supplied one
// (even empty) replaces it.
func (h *FilmHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrFilmNotFound) {
			respondError(w, http.StatusNotFound, "Film not found")
			return
		}
		log.Error().Err(err).Str("film_id", id).Msg("Failed to load film for update")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	film := models.Film{
		ID:          id,
		Title:       existing.Title,
		ReleaseDate: existing.ReleaseDate,
		Rating:      existing.Rating,
		GenreID:     existing.GenreID,
		Image:       existing.Image,
	}
	if v := r.FormValue("title"); v != "" {
		film.Title = v
	}
	if v := r.FormValue("releaseDate"); v != "" {
		film.ReleaseDate = v
	}
	if v := r.FormValue("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil || rating < 0 || rating > 5 {
			respondError(w, http.StatusBadRequest, "Invalid parameters")
			return
		}
		film.Rating = rating
	}
	if v := r.FormValue("genreId"); v != "" {
		film.GenreID = &v
	}

	image, err := formImageRef(r, h.uploads)
	if err != nil {
		h.respondUploadError(w, err)
		return
	}
	if image != "" {
		film.Image = image
	}

	characterIDs, supplied := formIDList(r, "characterIds")
	if !supplied {
		for _, ref := range existing.Links.Characters {
			characterIDs = append(characterIDs, ref.ID)
		}
	}

	saved, err := h.service.Save(film, &characterIDs)
	if err != nil {
		h.respondSaveError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// Delete removes a film.
func (h *FilmHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.service.Delete(id); err != nil {
		if errors.Is(err, models.ErrFilmNotFound) {
			respondError(w, http.StatusNotFound, "Film not found")
			return
		}
		log.Error().Err(err).Str("film_id", id).Msg("Failed to delete film")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FilmHandler) respondSaveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCharacterGiven):
		respondError(w, http.StatusBadRequest, "Invalid character id")
	case errors.Is(err, models.ErrFilmNotFound):
		respondError(w, http.StatusNotFound, "Film not found")
	default:
		log.Error().Err(err).Msg("Failed to save film")
		respondError(w, http.StatusInternalServerError, msgInternalError)
	}
}

func (h *FilmHandler) respondUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, upload.ErrUnsupportedImage) {
		respondError(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}
	log.Error().Err(err).Msg("Failed to store uploaded image")
	respondError(w, http.StatusInternalServerError, msgInternalError)
}
