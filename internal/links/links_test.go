package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderSelfLinks(t *testing.T) {
	b := NewBuilder("http://localhost:3000/", "http://localhost:3000/uploads/default.png")

	assert.Equal(t, "http://localhost:3000/characters/c1", b.Character("c1").Href)
	assert.Equal(t, "http://localhost:3000/movies/f1", b.Film("f1").Href)
	assert.Equal(t, "http://localhost:3000/genres/g1", b.Genre("g1").Href)
}

func TestBuilderImage(t *testing.T) {
	b := NewBuilder("http://localhost:3000", "http://localhost:3000/uploads/default.png")

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"empty falls back to default", "", "http://localhost:3000/uploads/default.png"},
		{"absolute http kept", "http://cdn.example.com/mickey.png", "http://cdn.example.com/mickey.png"},
		{"absolute https kept", "https://cdn.example.com/mickey.png", "https://cdn.example.com/mickey.png"},
		{"relative rooted at base", "uploads/mickey.png", "http://localhost:3000/uploads/mickey.png"},
		{"leading slash trimmed", "/uploads/mickey.png", "http://localhost:3000/uploads/mickey.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Image(tt.ref))
		})
	}
}
