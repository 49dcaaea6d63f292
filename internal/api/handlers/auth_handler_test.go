package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disneycatalog/internal/models"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthHandlerRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing username", `{"password":"secret1","email":"a@b.co"}`, "Missing username"},
		{"missing password", `{"username":"username","email":"a@b.co"}`, "Missing password"},
		{"missing email", `{"username":"username","password":"secret1"}`, "Missing email"},
		{"username too short", `{"username":"ab","password":"secret1","email":"a@b.co"}`, "Username too short"},
		{"password too short", `{"username":"username","password":"short","email":"a@b.co"}`, "Password too short"},
		{"password too long", `{"username":"username","password":"` + strings.Repeat("x", 256) + `","email":"a@b.co"}`, "Password too long"},
		{"invalid email", `{"username":"username","password":"secret1","email":"not-an-email"}`, "Invalid email"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAuthService{users: map[string]models.User{}}
			h := NewAuthHandler(svc)

			rec := postJSON(t, h.Register, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, errorBody(t, rec))
			assert.Empty(t, svc.registered)
		})
	}
}

func TestAuthHandlerRegisterExistingUsername(t *testing.T) {
	svc := &mockAuthService{users: map[string]models.User{
		"username": {ID: "u1", Username: "username"},
	}}
	h := NewAuthHandler(svc)

	rec := postJSON(t, h.Register, `{"username":"username","password":"secret1","email":"a@b.co"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exists", errorBody(t, rec))
}

func TestAuthHandlerRegisterSuccess(t *testing.T) {
	svc := &mockAuthService{users: map[string]models.User{}}
	h := NewAuthHandler(svc)

	rec := postJSON(t, h.Register, `{"username":"username","password":"secret1","email":"a@b.co"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new-user-id", body.Data["id"])

	require.Len(t, svc.welcomed, 1)
	assert.Equal(t, "a@b.co", svc.welcomed[0].Email)
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthService{})
		rec := postJSON(t, h.Login, `{"password":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing username", errorBody(t, rec))

		rec = postJSON(t, h.Login, `{"username":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing password", errorBody(t, rec))
	})

	t.Run("unknown username", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthService{signInErr: models.ErrUserNotFound})
		rec := postJSON(t, h.Login, `{"username":"unknown","password":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Incorrect username", errorBody(t, rec))
	})

	t.Run("wrong password", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthService{signInErr: models.ErrIncorrectPassword})
		rec := postJSON(t, h.Login, `{"username":"username","password":"wrong"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Incorrect password", errorBody(t, rec))
	})

	t.Run("success returns the token", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthService{signInToken: "signed-token"})
		rec := postJSON(t, h.Login, `{"username":"username","password":"secret1"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "signed-token", body.Data["token"])
	})
}
