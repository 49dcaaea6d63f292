package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"disneycatalog/internal/models"
	"disneycatalog/internal/services"
	"disneycatalog/internal/upload"
)

// GenreHandler handles HTTP requests for film genres.
type GenreHandler struct {
	service services.GenreServiceProvider
	uploads *upload.Store
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(service services.GenreServiceProvider, uploads *upload.Store) *GenreHandler {
	return &GenreHandler{service: service, uploads: uploads}
}

// GetAll lists every genre.
func (h *GenreHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list genres")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(w, http.StatusOK, genres)
}

// Get retrieves a single genre by id.
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	genre, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrGenreNotFound) {
			respondError(w, http.StatusNotFound, "Genre not found")
			return
		}
		log.Error().Err(err).Str("genre_id", id).Msg("Failed to get genre")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(w, http.StatusOK, genre)
}

// Create stores a new genre from a multipart form.
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "Missing name")
		return
	}

	image, err := formImageRef(r, h.uploads)
	if err != nil {
		h.respondUploadError(w, err)
		return
	}

	genre, err := h.service.Save(models.Genre{Name: name, Image: image})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create genre")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(w, http.StatusCreated, genre)
}

// Update merges the supplied fields over the stored genre.
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrGenreNotFound) {
			respondError(w, http.StatusNotFound, "Genre not found")
			return
		}
		log.Error().Err(err).Str("genre_id", id).Msg("Failed to load genre for update")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	genre := models.Genre{ID: id, Name: existing.Name, Image: existing.Image}
	if v := r.FormValue("name"); v != "" {
		genre.Name = v
	}

	image, err := formImageRef(r, h.uploads)
	if err != nil {
		h.respondUploadError(w, err)
		return
	}
	if image != "" {
		genre.Image = image
	}

	saved, err := h.service.Save(genre)
	if err != nil {
		if errors.Is(err, models.ErrGenreNotFound) {
			respondError(w, http.StatusNotFound, "Genre not found")
			return
		}
		log.Error().Err(err).Str("genre_id", id).Msg("Failed to update genre")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(w, http.StatusOK, saved)
}

// Delete removes a genre.
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.service.Delete(id); err != nil {
		if errors.Is(err, models.ErrGenreNotFound) {
			respondError(w, http.StatusNotFound, "Genre not found")
			return
		}
		log.Error().Err(err).Str("genre_id", id).Msg("Failed to delete genre")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GenreHandler) respondUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, upload.ErrUnsupportedImage) {
		respondError(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}
	log.Error().Err(err).Msg("Failed to store uploaded image")
	respondError(w, http.StatusInternalServerError, msgInternalError)
}
