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

// CharacterSearchParams are the optional, conjunctive character search filters.
type CharacterSearchParams struct {
	Name     string
	Age      *int
	Weight   *float64
	FilmName string
}

// CharacterRepository persists characters and their film associations.
type CharacterRepository struct {
	db    *sql.DB
	links *links.Builder
}

// NewCharacterRepository creates a new CharacterRepository.
func NewCharacterRepository(db *sql.DB, links *links.Builder) *CharacterRepository {
	return &CharacterRepository{db: db, links: links}
}

// GetByID retrieves a single character, including its film links.
func (r *CharacterRepository) GetByID(id string) (models.Character, error) {
	row := r.db.QueryRow(
		"SELECT id, name, image, story, age, weight, created_at, updated_at FROM characters WHERE id = ?", id)
	char, err := scanCharacter(row, r.links)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Character{}, models.ErrCharacterNotFound
		}
		return models.Character{}, err
	}
	char.Links.Films, err = r.filmRefs(char.ID)
	if err != nil {
		return models.Character{}, err
	}
	return char, nil
}

// Save inserts the character when its ID is empty, otherwise updates the
// existing row. When filmIDs is non-nil the stored association set is replaced
// wholesale with exactly those films; an unresolvable id aborts the whole save
// with ErrInvalidFilmGiven before anything is written. Row write and
// association replace share one transaction.
func (r *CharacterRepository) Save(char models.Character, filmIDs *[]string) (models.Character, error) {
	isNew := char.ID == ""
	if isNew {
		char.ID = uuid.New().String()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return models.Character{}, err
	}
	defer tx.Rollback()

	if filmIDs != nil {
		if err := resolveIDs(tx, "films", *filmIDs, models.ErrInvalidFilmGiven); err != nil {
			return models.Character{}, err
		}
	}

	now := time.Now().UTC()
	if isNew {
		_, err = tx.Exec(`
		INSERT INTO characters (id, name, image, story, age, weight, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			char.ID, char.Name, char.Image, char.Story, char.Age, char.Weight, now, now)
	} else {
		var res sql.Result
		res, err = tx.Exec(`
		UPDATE characters SET name = ?, image = ?, story = ?, age = ?, weight = ?, updated_at = ?
		WHERE id = ?`,
			char.Name, char.Image, char.Story, char.Age, char.Weight, now, char.ID)
		if err == nil {
			var affected int64
			affected, err = res.RowsAffected()
			if err == nil && affected == 0 {
				return models.Character{}, models.ErrCharacterNotFound
			}
		}
	}
	if err != nil {
		return models.Character{}, fmt.Errorf("failed to save character: %w", err)
	}

	if filmIDs != nil {
		if err := replaceAssociations(tx, "character_id", char.ID, "film_id", *filmIDs); err != nil {
			return models.Character{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Character{}, err
	}
	return r.GetByID(char.ID)
}

// Delete removes a character. Deleting an unknown id fails with
// ErrCharacterNotFound; join rows go with the character via the FK cascade.
func (r *CharacterRepository) Delete(id string) (int64, error) {
	var exists int
	if err := r.db.QueryRow("SELECT 1 FROM characters WHERE id = ?", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrCharacterNotFound
		}
		return 0, err
	}
	res, err := r.db.Exec("DELETE FROM characters WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Search returns character summaries matching every supplied filter. Name and
// film title match case-insensitive substrings; age and weight match exactly.
func (r *CharacterRepository) Search(params CharacterSearchParams) ([]models.CharacterSummary, error) {
	query := "SELECT DISTINCT c.id, c.name, c.image FROM characters c"
	var conditions []string
	var args []interface{}

	if params.FilmName != "" {
		query += ` JOIN films_characters fc ON fc.character_id = c.id
		JOIN films f ON f.id = fc.film_id`
		conditions = append(conditions, "LOWER(f.title) LIKE '%' || LOWER(?) || '%'")
		args = append(args, params.FilmName)
	}
	if params.Name != "" {
		conditions = append(conditions, "LOWER(c.name) LIKE '%' || LOWER(?) || '%'")
		args = append(args, params.Name)
	}
	if params.Age != nil {
		conditions = append(conditions, "c.age = ?")
		args = append(args, *params.Age)
	}
	if params.Weight != nil {
		conditions = append(conditions, "c.weight = ?")
		args = append(args, *params.Weight)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.CharacterSummary{}
	for rows.Next() {
		var s models.CharacterSummary
		var image string
		if err := rows.Scan(&s.ID, &s.Name, &image); err != nil {
			return nil, err
		}
		s.Image = r.links.Image(image)
		s.Self = r.links.Character(s.ID)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// filmRefs loads the titled links of the films a character appears in.
func (r *CharacterRepository) filmRefs(characterID string) ([]models.FilmRef, error) {
	rows, err := r.db.Query(`
	SELECT f.id, f.title FROM films f
	JOIN films_characters fc ON fc.film_id = f.id
	WHERE fc.character_id = ?`, characterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []models.FilmRef{}
	for rows.Next() {
		var ref models.FilmRef
		if err := rows.Scan(&ref.ID, &ref.Title); err != nil {
			return nil, err
		}
		ref.Href = r.links.Film(ref.ID).Href
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// scanCharacter maps a character row to the entity, resolving nullable columns
// and absolutizing the image reference.
func scanCharacter(scanner interface{ Scan(...interface{}) error }, lb *links.Builder) (models.Character, error) {
	var char models.Character
	var image string
	var age sql.NullInt64
	var weight sql.NullFloat64

	err := scanner.Scan(&char.ID, &char.Name, &image, &char.Story, &age, &weight, &char.CreatedAt, &char.UpdatedAt)
	if err != nil {
		return char, err
	}
	if age.Valid {
		v := int(age.Int64)
		char.Age = &v
	}
	if weight.Valid {
		v := weight.Float64
		char.Weight = &v
	}
	char.Image = lb.Image(image)
	char.Links.Self = lb.Character(char.ID)
	char.Links.Films = []models.FilmRef{}
	return char, nil
}
