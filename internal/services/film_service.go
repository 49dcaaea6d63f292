package services

import (
	"disneycatalog/internal/models"
	"disneycatalog/internal/repositories"
)

// FilmServiceProvider defines the interface for film services.
type FilmServiceProvider interface {
	GetByID(id string) (models.Film, error)
	Save(film models.Film, characterIDs *[]string) (models.Film, error)
	Delete(id string) (int64, error)
	Search(params repositories.FilmSearchParams) ([]models.FilmSummary, error)
}

// FilmService forwards film operations to the repository.
type FilmService struct {
	repo *repositories.FilmRepository
}

// NewFilmService creates a new FilmService.
func NewFilmService(repo *repositories.FilmRepository) *FilmService {
	return &FilmService{repo: repo}
}

func (s *FilmService) GetByID(id string) (models.Film, error) {
	return s.repo.GetByID(id)
}

func (s *FilmService) Save(film models.Film, characterIDs *[]string) (models.Film, error) {
	return s.repo.Save(film, characterIDs)
}

func (s *FilmService) Delete(id string) (int64, error) {
	return s.repo.Delete(id)
}

func (s *FilmService) Search(params repositories.FilmSearchParams) ([]models.FilmSummary, error) {
	return s.repo.Search(params)
}
