package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disneycatalog/internal/models"
	"disneycatalog/internal/upload"
)

func genreRouter(svc *mockGenreService, uploads *upload.Store) http.Handler {
	h := NewGenreHandler(svc, uploads)
	r := chi.NewRouter()
	r.Get("/genres", h.GetAll)
	r.Post("/genres", h.Create)
	r.Get("/genres/{id}", h.Get)
	r.Patch("/genres/{id}", h.Update)
	r.Delete("/genres/{id}", h.Delete)
	return r
}

func TestGenreHandlerGetAll(t *testing.T) {
	svc := &mockGenreService{genres: map[string]models.Genre{
		"g1": {ID: "g1", Name: "Animation"},
	}}
	router := genreRouter(svc, newTestUploadStore(t))

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/genres", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []models.Genre `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Animation", body.Data[0].Name)
}

func TestGenreHandlerGet(t *testing.T) {
	svc := &mockGenreService{genres: map[string]models.Genre{
		"g1": {ID: "g1", Name: "Animation"},
	}}
	router := genreRouter(svc, newTestUploadStore(t))

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/genres/g1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, httptest.NewRequest(http.MethodGet, "/genres/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Genre not found", errorBody(t, rec))
}

func TestGenreHandlerCreate(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		svc := &mockGenreService{}
		router := genreRouter(svc, newTestUploadStore(t))

		rec := doRequest(router, formRequest(http.MethodPost, "/genres", url.Values{}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing name", errorBody(t, rec))
	})

	t.Run("success", func(t *testing.T) {
		svc := &mockGenreService{}
		router := genreRouter(svc, newTestUploadStore(t))

		rec := doRequest(router, formRequest(http.MethodPost, "/genres", url.Values{"name": {"Animation"}}))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Animation", svc.lastSaved.Name)

		var body struct {
			Data models.Genre `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "generated-id", body.Data.ID)
	})
}

func TestGenreHandlerUpdate(t *testing.T) {
	svc := &mockGenreService{genres: map[string]models.Genre{
		"g1": {ID: "g1", Name: "Animation", Image: "http://localhost:3000/uploads/animation.png"},
	}}
	router := genreRouter(svc, newTestUploadStore(t))

	rec := doRequest(router, formRequest(http.MethodPatch, "/genres/g1", url.Values{"name": {"Animated"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Animated", svc.lastSaved.Name)
	assert.Equal(t, "http://localhost:3000/uploads/animation.png", svc.lastSaved.Image)

	rec = doRequest(router, formRequest(http.MethodPatch, "/genres/missing", url.Values{"name": {"X"}}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Genre not found", errorBody(t, rec))
}

func TestGenreHandlerDelete(t *testing.T) {
	svc := &mockGenreService{genres: map[string]models.Genre{
		"g1": {ID: "g1", Name: "Animation"},
	}}
	router := genreRouter(svc, newTestUploadStore(t))

	rec := doRequest(router, httptest.NewRequest(http.MethodDelete, "/genres/g1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, httptest.NewRequest(http.MethodDelete, "/genres/g1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Genre not found", errorBody(t, rec))
}
