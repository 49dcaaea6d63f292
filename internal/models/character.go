package models

import "time"

// Character represents a catalog character and the films it appears in.
type Character struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Image     string         `json:"image"`
	Story     string         `json:"story"`
	Age       *int           `json:"age"`
	Weight    *float64       `json:"weight"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Links     CharacterLinks `json:"links"`
}

// CharacterLinks carries the navigational links emitted with a character.
type CharacterLinks struct {
	Self  Link      `json:"self"`
	Films []FilmRef `json:"films"`
}

// FilmRef is a lightweight pointer to an associated film. The id is kept for
// internal use (re-submitting an unchanged association set on update) but only
// the title and href are rendered.
type FilmRef struct {
	ID    string `json:"-"`
	Title string `json:"title"`
	Href  string `json:"href"`
}

// CharacterSummary is the projection returned by character searches.
type CharacterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Self  Link   `json:"self"`
}

// Link is a single HATEOAS-style hyperlink.
type Link struct {
	Href string `json:"href"`
}
