package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"disneycatalog/internal/links"
	"disneycatalog/internal/models"
)

// GenreRepository persists genres.
type GenreRepository struct {
	db    *sql.DB
	links *links.Builder
}

// NewGenreRepository creates a new GenreRepository.
func NewGenreRepository(db *sql.DB, links *links.Builder) *GenreRepository {
	return &GenreRepository{db: db, links: links}
}

// FindAll retrieves every genre.
func (r *GenreRepository) FindAll() ([]models.Genre, error) {
	rows, err := r.db.Query("SELECT id, name, image, created_at, updated_at FROM genres")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []models.Genre{}
	for rows.Next() {
		genre, err := scanGenre(rows, r.links)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, rows.Err()
}

// GetByID retrieves a single genre.
func (r *GenreRepository) GetByID(id string) (models.Genre, error) {
	row := r.db.QueryRow("SELECT id, name, image, created_at, updated_at FROM genres WHERE id = ?", id)
	genre, err := scanGenre(row, r.links)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Genre{}, models.ErrGenreNotFound
		}
		return models.Genre{}, err
	}
	return genre, nil
}

// Save inserts the genre when its ID is empty, otherwise updates the row.
func (r *GenreRepository) Save(genre models.Genre) (models.Genre, error) {
	isNew := genre.ID == ""
	if isNew {
		genre.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	if isNew {
		_, err := r.db.Exec(
			"INSERT INTO genres (id, name, image, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			genre.ID, genre.Name, genre.Image, now, now)
		if err != nil {
			return models.Genre{}, fmt.Errorf("failed to save genre: %w", err)
		}
	} else {
		res, err := r.db.Exec(
			"UPDATE genres SET name = ?, image = ?, updated_at = ? WHERE id = ?",
			genre.Name, genre.Image, now, genre.ID)
		if err != nil {
			return models.Genre{}, fmt.Errorf("failed to save genre: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return models.Genre{}, err
		}
		if affected == 0 {
			return models.Genre{}, models.ErrGenreNotFound
		}
	}
	return r.GetByID(genre.ID)
}

// Delete removes a genre. Films referencing it keep existing with a null genre
// via the FK's ON DELETE SET NULL.
func (r *GenreRepository) Delete(id string) (int64, error) {
	var exists int
	if err := r.db.QueryRow("SELECT 1 FROM genres WHERE id = ?", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrGenreNotFound
		}
		return 0, err
	}
	res, err := r.db.Exec("DELETE FROM genres WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanGenre(scanner interface{ Scan(...interface{}) error }, lb *links.Builder) (models.Genre, error) {
	var genre models.Genre
	var image string
	err := scanner.Scan(&genre.ID, &genre.Name, &image, &genre.CreatedAt, &genre.UpdatedAt)
	if err != nil {
		return genre, err
	}
	genre.Image = lb.Image(image)
	return genre, nil
}
