package services

import (
	"disneycatalog/internal/models"
	"disneycatalog/internal/repositories"
)

// GenreServiceProvider defines the interface for genre services.
type GenreServiceProvider interface {
	FindAll() ([]models.Genre, error)
	GetByID(id string) (models.Genre, error)
	Save(genre models.Genre) (models.Genre, error)
	Delete(id string) (int64, error)
}

// GenreService forwards genre operations to the repository.
type GenreService struct {
	repo *repositories.GenreRepository
}

// NewGenreService creates a new GenreService.
func NewGenreService(repo *repositories.GenreRepository) *GenreService {
	return &GenreService{repo: repo}
}

func (s *GenreService) FindAll() ([]models.Genre, error) {
	return s.repo.FindAll()
}

func (s *GenreService) GetByID(id string) (models.Genre, error) {
	return s.repo.GetByID(id)
}

func (s *GenreService) Save(genre models.Genre) (models.Genre, error) {
	return s.repo.Save(genre)
}

func (s *GenreService) Delete(id string) (int64, error) {
	return s.repo.Delete(id)
}
