package models

import "time"

// Film represents a catalog film. GenreID is nil when no genre is assigned.
type Film struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	ReleaseDate string    `json:"releaseDate"`
	Rating      float64   `json:"rating"`
	GenreID     *string   `json:"genreId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Links       FilmLinks `json:"links"`
}

// FilmLinks carries the navigational links emitted with a film.
type FilmLinks struct {
	Self       Link           `json:"self"`
	Characters []CharacterRef `json:"characters"`
}

// CharacterRef is a lightweight pointer to an associated character.
type CharacterRef struct {
	ID   string `json:"-"`
	Name string `json:"name"`
	Href string `json:"href"`
}

// FilmSummary is the projection returned by film searches.
type FilmSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	ReleaseDate string `json:"releaseDate"`
	Self        Link   `json:"self"`
}
