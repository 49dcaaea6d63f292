package database

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dataSourceName, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite", dataSourceName+sep+"_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS genres (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS characters (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		story TEXT NOT NULL DEFAULT '',
		age INTEGER,
		weight REAL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS films (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		release_date TEXT NOT NULL DEFAULT '',
		rating REAL NOT NULL DEFAULT 0,
		genre_id TEXT REFERENCES genres(id) ON DELETE SET NULL,
		image TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS films_characters (
		film_id TEXT NOT NULL REFERENCES films(id) ON DELETE CASCADE,
		character_id TEXT NOT NULL REFERENCES characters(id) ON DELETE CASCADE,
		PRIMARY KEY (film_id, character_id)
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

// Reset drops every table and recreates the schema from scratch. Destructive;
// only reachable through the -reset-db flag, never during request handling.
func Reset(db *sql.DB) error {
	const dropStmt = `
	DROP TABLE IF EXISTS films_characters;
	DROP TABLE IF EXISTS films;
	DROP TABLE IF EXISTS characters;
	DROP TABLE IF EXISTS genres;
	DROP TABLE IF EXISTS users;
	`
	if _, err := db.Exec(dropStmt); err != nil {
		return err
	}
	return Migrate(db)
}
