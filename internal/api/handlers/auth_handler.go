package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"disneycatalog/internal/models"
	"disneycatalog/internal/services"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service  services.AuthServiceProvider
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider) *AuthHandler {
	return &AuthHandler{service: service, validate: validator.New()}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6,max=255"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles new user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validationMessage(payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	// Probe for an existing account; NotFound means the username is free.
	_, err := h.service.GetByUsername(payload.Username)
	if err == nil {
		respondError(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to probe for existing user")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	user, err := h.service.Register(payload.Username, payload.Password, payload.Email)
	if err != nil {
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.service.SendWelcomeEmail(user)
	respondData(w, http.StatusCreated, map[string]string{"id": user.ID})
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validationMessage(payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	token, err := h.service.SignIn(payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			respondError(w, http.StatusBadRequest, "Incorrect username")
		case errors.Is(err, models.ErrIncorrectPassword):
			respondError(w, http.StatusBadRequest, "Incorrect password")
		default:
			log.Error().Err(err).Str("username", payload.Username).Msg("Failed to sign in user")
			respondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	respondData(w, http.StatusOK, map[string]string{"token": token})
}

// validationMessage maps the first validator failure to the API's
// field-specific error message; empty means the payload is valid.
func (h *AuthHandler) validationMessage(payload interface{}) string {
	err := h.validate.Struct(payload)
	if err == nil {
		return ""
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid request body"
	}

	fe := fieldErrors[0]
	switch fe.Field() {
	case "Username":
		if fe.Tag() == "required" {
			return "Missing username"
		}
		return "Username too short"
	case "Password":
		switch fe.Tag() {
		case "required":
			return "Missing password"
		case "max":
			return "Password too long"
		default:
			return "Password too short"
		}
	case "Email":
		if fe.Tag() == "required" {
			return "Missing email"
		}
		return "Invalid email"
	}
	return "Invalid request body"
}
