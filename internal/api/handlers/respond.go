package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"disneycatalog/internal/upload"
)

const msgInternalError = "Internal server error"

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondData wraps the payload in the {"data": ...} envelope used by list and
// auth endpoints.
func respondData(w http.ResponseWriter, status int, payload interface{}) {
	respondJSON(w, status, map[string]interface{}{"data": payload})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// parseForm accepts both multipart and urlencoded bodies so the association
// endpoints work with or without a file part.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(32 << 20)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// formIDList reads an association id field, normalizing a single value or
// repeated values to a slice and dropping empties. The second return reports
// whether the field was present at all, which is what distinguishes "replace
// with this set" from "keep the current set" on updates.
func formIDList(r *http.Request, field string) ([]string, bool) {
	values, ok := r.Form[field]
	if !ok {
		return nil, false
	}
	ids := []string{}
	for _, v := range values {
		if v != "" {
			ids = append(ids, v)
		}
	}
	return ids, true
}

// formImageRef stores an uploaded image file when one is attached and returns
// its reference; no file means an empty reference.
func formImageRef(r *http.Request, store *upload.Store) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()
	return store.SaveImage(file, header)
}
