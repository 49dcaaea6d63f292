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

// CharacterHandler handles HTTP requests for catalog characters.
type CharacterHandler struct {
	service services.CharacterServiceProvider
	uploads *upload.Store
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(service services.CharacterServiceProvider, uploads *upload.Store) *CharacterHandler {
	return &CharacterHandler{service: service, uploads: uploads}
}

// Search lists character summaries matching the query filters.
func (h *CharacterHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repositories.CharacterSearchParams{
		Name:     q.Get("name"),
		FilmName: q.Get("filmName"),
	}
	if v := q.Get("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid parameters")
			return
		}
		params.Age = &age
	}
	if v := q.Get("weight"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid parameters")
			return
		}
		params.Weight = &weight
	}

	characters, err := h.service.Search(params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to search characters")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(w, http.StatusOK, characters)
}

// Get retrieves a single character by id.
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	character, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrCharacterNotFound) {
			respondError(w, http.StatusNotFound, "Character not found")
			return
		}
		log.Error().Err(err).Str("character_id", id).Msg("Failed to get character")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondJSON(w, http.StatusOK, character)
}

// Create stores a new character from a multipart form. The filmIds field, even
// when absent, becomes the character's complete association set.
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	character := models.Character{
		Name:  r.FormValue("name"),
		Story: r.FormValue("story"),
	}
	if character.Name == "" {
		respondError(w, http.StatusBadRequest, "Missing name")
		return
	}
	if character.Story == "" {
		respondError(w, http.StatusBadRequest, "Missing story")
		return
	}

	var ok bool
	if character.Age, character.Weight, ok = parseOptionalMeasurements(w, r); !ok {
		return
	}

	image, err := formImageRef(r, h.uploads)
	if err != nil {
		h.respondUploadError(w, err)
		return
	}
	character.Image = image

	filmIDs, _ := formIDList(r, "filmIds")
	saved, err := h.service.Save(character, &filmIDs)
	if err != nil {
		h.respondSaveError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// Update merges the supplied fields over the stored character. A missing
// filmIds field re-submits the current association set; a supplied one (even
// empty) replaces it.
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrCharacterNotFound) {
			respondError(w, http.StatusNotFound, "Character not found")
			return
		}
		log.Error().Err(err).Str("character_id", id).Msg("Failed to load character for update")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	character := models.Character{
		ID:     id,
		Name:   existing.Name,
		Story:  existing.Story,
		Image:  existing.Image,
		Age:    existing.Age,
		Weight: existing.Weight,
	}
	if v := r.FormValue("name"); v != "" {
		character.Name = v
	}
	if v := r.FormValue("story"); v != "" {
		character.Story = v
	}
	if age, weight, ok := parseOptionalMeasurements(w, r); ok {
		if age != nil {
			character.Age = age
		}
		if weight != nil {
			character.Weight = weight
		}
	} else {
		return
	}

	image, err := formImageRef(r, h.uploads)
	if err != nil {
		h.respondUploadError(w, err)
		return
	}
	if image != "" {
		character.Image = image
	}

	filmIDs, supplied := formIDList(r, "filmIds")
	if !supplied {
		for _, ref := range existing.Links.Films {
			filmIDs = append(filmIDs, ref.ID)
		}
	}

	saved, err := h.service.Save(character, &filmIDs)
	if err != nil {
		h.respondSaveError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// Delete removes a character.
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.service.Delete(id); err != nil {
		if errors.Is(err, models.ErrCharacterNotFound) {
			respondError(w, http.StatusNotFound, "Character not found")
			return
		}
		log.Error().Err(err).Str("character_id", id).Msg("Failed to delete character")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CharacterHandler) respondSaveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidFilmGiven):
		respondError(w, http.StatusBadRequest, "Invalid film id")
	case errors.Is(err, models.ErrCharacterNotFound):
		respondError(w, http.StatusNotFound, "Character not found")
	default:
		log.Error().Err(err).Msg("Failed to save character")
		respondError(w, http.StatusInternalServerError, msgInternalError)
	}
}

func (h *CharacterHandler) respondUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, upload.ErrUnsupportedImage) {
		respondError(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}
	log.Error().Err(err).Msg("Failed to store uploaded image")
	respondError(w, http.StatusInternalServerError, msgInternalError)
}

// parseOptionalMeasurements reads the optional age and weight form fields.
// It writes the error response itself and reports false when either is
// malformed.
func parseOptionalMeasurements(w http.ResponseWriter, r *http.Request) (*int, *float64, bool) {
	var age *int
	var weight *float64
	if v := r.FormValue("age"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid parameters")
			return nil, nil, false
		}
		age = &parsed
	}
	if v := r.FormValue("weight"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid parameters")
			return nil, nil, false
		}
		weight = &parsed
	}
	return age, weight, true
}
