package models

import "errors"

// Domain errors surfaced by the repositories and services. Handlers translate
// these into HTTP status codes; everything else becomes a 500.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrFilmNotFound      = errors.New("film not found")
	ErrGenreNotFound     = errors.New("genre not found")

	// Returned when a save references an associated entity id that does not exist.
	ErrInvalidFilmGiven      = errors.New("invalid film id given")
	ErrInvalidCharacterGiven = errors.New("invalid character id given")

	ErrIncorrectPassword = errors.New("incorrect password")
)
