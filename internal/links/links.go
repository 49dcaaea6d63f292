package links

import (
	"strings"

	"disneycatalog/internal/models"
)

// Builder constructs the absolute URLs embedded in API responses. All link
// construction goes through here so the public base URL is applied in one place.
type Builder struct {
	baseURL      string
	defaultImage string
}

// NewBuilder creates a Builder. baseURL must not end with a slash.
func NewBuilder(baseURL, defaultImage string) *Builder {
	return &Builder{
		baseURL:      strings.TrimRight(baseURL, "/"),
		defaultImage: defaultImage,
	}
}

// Character returns the self link for a character id.
func (b *Builder) Character(id string) models.Link {
	return models.Link{Href: b.baseURL + "/characters/" + id}
}

// Film returns the self link for a film id.
func (b *Builder) Film(id string) models.Link {
	return models.Link{Href: b.baseURL + "/movies/" + id}
}

// Genre returns the self link for a genre id.
func (b *Builder) Genre(id string) models.Link {
	return models.Link{Href: b.baseURL + "/genres/" + id}
}

// Image resolves a stored image reference to an absolute URL. Empty references
// fall back to the configured default; relative ones are rooted at the base URL.
func (b *Builder) Image(ref string) string {
	if ref == "" {
		return b.defaultImage
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return b.baseURL + "/" + strings.TrimLeft(ref, "/")
}
