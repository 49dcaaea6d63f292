package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"disneycatalog/internal/links"
	"disneycatalog/internal/models"
)

// FilmSearchParams are the optional, conjunctive film search filters. Order
// sorts the result by title; anything but "desc" (case-insensitive) means
// ascending.
type FilmSearchParams struct {
	Title   string
	GenreID string
	Order   string
}

// FilmRepository persists films and their character associations.
type FilmRepository struct {
	db    *sql.DB
	links *links.Builder
}

// NewFilmRepository creates a new FilmRepository.
func NewFilmRepository(db *sql.DB, links *links.Builder) *FilmRepository {
	return &FilmRepository{db: db, links: links}
}

// GetByID retrieves a single film, including its character links.
func (r *FilmRepository) GetByID(id string) (models.Film, error) {
	row := r.db.QueryRow(
		"SELECT id, title, image, release_date, rating, genre_id, created_at, updated_at FROM films WHERE id = ?", id)
	film, err := scanFilm(row, r.links)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Film{}, models.ErrFilmNotFound
		}
		return models.Film{}, err
	}
	film.Links.Characters, err = r.characterRefs(film.ID)
	if err != nil {
		return models.Film{}, err
	}
	return film, nil
}

// Save inserts or updates a film. When characterIDs is non-nil the stored
// association set is replaced with exactly those characters; an unresolvable id
// aborts the save with ErrInvalidCharacterGiven. Row write and association
// replace share one transaction.
func (r *FilmRepository) Save(film models.Film, characterIDs *[]string) (models.Film, error) {
	isNew := film.ID == ""
	if isNew {
		film.ID = uuid.New().String()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return models.Film{}, err
	}
	defer tx.Rollback()

	if characterIDs != nil {
		if err := resolveIDs(tx, "characters", *characterIDs, models.ErrInvalidCharacterGiven); err != nil {
			return models.Film{}, err
		}
	}

	now := time.Now().UTC()
	if isNew {
		_, err = tx.Exec(`
		INSERT INTO films (id, title, image, release_date, rating, genre_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			film.ID, film.Title, film.Image, film.ReleaseDate, film.Rating, film.GenreID, now, now)
	} else {
		var res sql.Result
		res, err = tx.Exec(`
		UPDATE films SET title = ?, image = ?, release_date = ?, rating = ?, genre_id = ?, updated_at = ?
		WHERE id = ?`,
			film.Title, film.Image, film.ReleaseDate, film.Rating, film.GenreID, now, film.ID)
		if err == nil {
			var affected int64
			affected, err = res.RowsAffected()
			if err == nil && affected == 0 {
				return models.Film{}, models.ErrFilmNotFound
			}
		}
	}
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to save film: %w", err)
	}

	if characterIDs != nil {
		if err := replaceAssociations(tx, "film_id", film.ID, "character_id", *characterIDs); err != nil {
			return models.Film{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Film{}, err
	}
	return r.GetByID(film.ID)
}

// Delete removes a film. Deleting an unknown id fails with ErrFilmNotFound.
func (r *FilmRepository) Delete(id string) (int64, error) {
	var exists int
	if err := r.db.QueryRow("SELECT 1 FROM films WHERE id = ?", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrFilmNotFound
		}
		return 0, err
	}
	res, err := r.db.Exec("DELETE FROM films WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Search returns film summaries matching every supplied filter, ordered by
// title (ascending unless Order is "desc").
func (r *FilmRepository) Search(params FilmSearchParams) ([]models.FilmSummary, error) {
	query := "SELECT id, title, image, release_date FROM films"
	var conditions []string
	var args []interface{}

	if params.Title != "" {
		conditions = append(conditions, "LOWER(title) LIKE '%' || LOWER(?) || '%'")
		args = append(args, params.Title)
	}
	if params.GenreID != "" {
		conditions = append(conditions, "genre_id = ?")
		args = append(args, params.GenreID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	direction := "ASC"
	if strings.EqualFold(params.Order, "desc") {
		direction = "DESC"
	}
	query += " ORDER BY title " + direction

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.FilmSummary{}
	for rows.Next() {
		var s models.FilmSummary
		var image string
		if err := rows.Scan(&s.ID, &s.Title, &image, &s.ReleaseDate); err != nil {
			return nil, err
		}
		s.Image = r.links.Image(image)
		s.Self = r.links.Film(s.ID)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// characterRefs loads the named links of the characters appearing in a film.
func (r *FilmRepository) characterRefs(filmID string) ([]models.CharacterRef, error) {
	rows, err := r.db.Query(`
	SELECT c.id, c.name FROM characters c
	JOIN films_characters fc ON fc.character_id = c.id
	WHERE fc.film_id = ?`, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []models.CharacterRef{}
	for rows.Next() {
		var ref models.CharacterRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		ref.Href = r.links.Character(ref.ID).Href
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// scanFilm maps a film row to the entity.
func scanFilm(scanner interface{ Scan(...interface{}) error }, lb *links.Builder) (models.Film, error) {
	var film models.Film
	var image string
	var genreID sql.NullString

	err := scanner.Scan(&film.ID, &film.Title, &image, &film.ReleaseDate, &film.Rating,
		&genreID, &film.CreatedAt, &film.UpdatedAt)
	if err != nil {
		return film, err
	}
	if genreID.Valid {
		film.GenreID = &genreID.String
	}
	film.Image = lb.Image(image)
	film.Links.Self = lb.Film(film.ID)
	film.Links.Characters = []models.CharacterRef{}
	return film, nil
}
