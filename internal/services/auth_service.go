package services

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"disneycatalog/internal/auth"
	"disneycatalog/internal/mail"
	"disneycatalog/internal/models"
	"disneycatalog/internal/repositories"
)

// bcryptCost is the fixed work factor applied to stored passwords.
const bcryptCost = 10

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	GetByUsername(username string) (models.User, error)
	Register(username, password, email string) (models.User, error)
	SignIn(username, password string) (string, error)
	SendWelcomeEmail(user models.User)
}

// AuthService handles registration and credential verification on top of the
// user repository.
type AuthService struct {
	repo   *repositories.UserRepository
	tokens *auth.Auth
	mailer mail.Mailer
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repositories.UserRepository, tokens *auth.Auth, mailer mail.Mailer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, mailer: mailer}
}

func (s *AuthService) GetByUsername(username string) (models.User, error) {
	return s.repo.GetByUsername(username)
}

// Register hashes the plaintext password and stores the new user.
func (s *AuthService) Register(username, password, email string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.User{}, err
	}
	return s.repo.Save(models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// SignIn verifies the credentials and issues an access token for the user.
// Unknown usernames surface models.ErrUserNotFound, wrong passwords
// models.ErrIncorrectPassword.
func (s *AuthService) SignIn(username, password string) (string, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrIncorrectPassword
	}
	return s.tokens.GenerateToken(user.ID)
}

// SendWelcomeEmail dispatches the greeting mail. Best effort: failures are
// logged and never affect the registration that triggered them.
func (s *AuthService) SendWelcomeEmail(user models.User) {
	if err := s.mailer.SendWelcome(user.Email, user.Username); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("Failed to send welcome email")
	}
}
