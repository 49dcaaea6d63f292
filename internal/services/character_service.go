package services

import (
	"disneycatalog/internal/models"
	"disneycatalog/internal/repositories"
)

// CharacterServiceProvider defines the interface for character services.
type CharacterServiceProvider interface {
	GetByID(id string) (models.Character, error)
	Save(char models.Character, filmIDs *[]string) (models.Character, error)
	Delete(id string) (int64, error)
	Search(params repositories.CharacterSearchParams) ([]models.CharacterSummary, error)
}

// CharacterService forwards character operations to the repository.
type CharacterService struct {
	repo *repositories.CharacterRepository
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(repo *repositories.CharacterRepository) *CharacterService {
	return &CharacterService{repo: repo}
}

func (s *CharacterService) GetByID(id string) (models.Character, error) {
	return s.repo.GetByID(id)
}

func (s *CharacterService) Save(char models.Character, filmIDs *[]string) (models.Character, error) {
	return s.repo.Save(char, filmIDs)
}

func (s *CharacterService) Delete(id string) (int64, error) {
	return s.repo.Delete(id)
}

func (s *CharacterService) Search(params repositories.CharacterSearchParams) ([]models.CharacterSummary, error) {
	return s.repo.Search(params)
}
