package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"disneycatalog/internal/models"
	"disneycatalog/internal/repositories"
	"disneycatalog/internal/upload"
)

// mockAuthService implements services.AuthServiceProvider.
type mockAuthService struct {
	users       map[string]models.User
	registerErr error
	signInToken string
	signInErr   error
	registered  []models.User
	welcomed    []models.User
}

func (m *mockAuthService) GetByUsername(username string) (models.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return models.User{}, models.ErrUserNotFound
}

func (m *mockAuthService) Register(username, password, email string) (models.User, error) {
	if m.registerErr != nil {
		return models.User{}, m.registerErr
	}
	user := models.User{ID: "new-user-id", Username: username, Email: email}
	m.registered = append(m.registered, user)
	return user, nil
}

func (m *mockAuthService) SignIn(username, password string) (string, error) {
	if m.signInErr != nil {
		return "", m.signInErr
	}
	return m.signInToken, nil
}

func (m *mockAuthService) SendWelcomeEmail(user models.User) {
	m.welcomed = append(m.welcomed, user)
}

// mockCharacterService implements services.CharacterServiceProvider.
type mockCharacterService struct {
	characters map[string]models.Character
	saveErr    error
	searchErr  error
	summaries  []models.CharacterSummary

	lastSaved   models.Character
	lastFilmIDs *[]string
	lastParams  repositories.CharacterSearchParams
}

func (m *mockCharacterService) GetByID(id string) (models.Character, error) {
	if c, ok := m.characters[id]; ok {
		return c, nil
	}
	return models.Character{}, models.ErrCharacterNotFound
}

func (m *mockCharacterService) Save(char models.Character, filmIDs *[]string) (models.Character, error) {
	m.lastSaved = char
	m.lastFilmIDs = filmIDs
	if m.saveErr != nil {
		return models.Character{}, m.saveErr
	}
	if char.ID == "" {
		char.ID = "generated-id"
	}
	return char, nil
}

func (m *mockCharacterService) Delete(id string) (int64, error) {
	if _, ok := m.characters[id]; !ok {
		return 0, models.ErrCharacterNotFound
	}
	delete(m.characters, id)
	return 1, nil
}

func (m *mockCharacterService) Search(params repositories.CharacterSearchParams) ([]models.CharacterSummary, error) {
	m.lastParams = params
	return m.summaries, m.searchErr
}

// mockFilmService implements services.FilmServiceProvider.
type mockFilmService struct {
	films     map[string]models.Film
	saveErr   error
	searchErr error
	summaries []models.FilmSummary

	lastSaved        models.Film
	lastCharacterIDs *[]string
	lastParams       repositories.FilmSearchParams
}

func (m *mockFilmService) GetByID(id string) (models.Film, error) {
	if f, ok := m.films[id]; ok {
		return f, nil
	}
	return models.Film{}, models.ErrFilmNotFound
}

func (m *mockFilmService) Save(film models.Film, characterIDs *[]string) (models.Film, error) {
	m.lastSaved = film
	m.lastCharacterIDs = characterIDs
	if m.saveErr != nil {
		return models.Film{}, m.saveErr
	}
	if film.ID == "" {
		film.ID = "generated-id"
	}
	return film, nil
}

func (m *mockFilmService) Delete(id string) (int64, error) {
	if _, ok := m.films[id]; !ok {
		return 0, models.ErrFilmNotFound
	}
	delete(m.films, id)
	return 1, nil
}

func (m *mockFilmService) Search(params repositories.FilmSearchParams) ([]models.FilmSummary, error) {
	m.lastParams = params
	return m.summaries, m.searchErr
}

// mockGenreService implements services.GenreServiceProvider.
type mockGenreService struct {
	genres  map[string]models.Genre
	saveErr error

	lastSaved models.Genre
}

func (m *mockGenreService) FindAll() ([]models.Genre, error) {
	all := []models.Genre{}
	for _, g := range m.genres {
		all = append(all, g)
	}
	return all, nil
}

func (m *mockGenreService) GetByID(id string) (models.Genre, error) {
	if g, ok := m.genres[id]; ok {
		return g, nil
	}
	return models.Genre{}, models.ErrGenreNotFound
}

func (m *mockGenreService) Save(genre models.Genre) (models.Genre, error) {
	m.lastSaved = genre
	if m.saveErr != nil {
		return models.Genre{}, m.saveErr
	}
	if genre.ID == "" {
		genre.ID = "generated-id"
	}
	return genre, nil
}

func (m *mockGenreService) Delete(id string) (int64, error) {
	if _, ok := m.genres[id]; !ok {
		return 0, models.ErrGenreNotFound
	}
	delete(m.genres, id)
	return 1, nil
}

func newTestUploadStore(t *testing.T) *upload.Store {
	t.Helper()
	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func doRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
