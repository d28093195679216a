package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

const genreSeparator = ","

// Genres is an ordered set of genre tags. It is stored as a single
// comma-joined column and decoded back into tags when scanned.
type Genres []string

// NewGenres trims the given tags and drops empties and repeats, keeping
// the first occurrence of each tag.
func NewGenres(tags ...string) Genres {
	seen := make(map[string]bool, len(tags))
	out := make(Genres, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// ParseGenres decodes the persisted form.
func ParseGenres(s string) Genres {
	if strings.TrimSpace(s) == "" {
		return Genres{}
	}
	return NewGenres(strings.Split(s, genreSeparator)...)
}

func (g Genres) String() string {
	return strings.Join(NewGenres(g...), genreSeparator)
}

func (g Genres) Value() (driver.Value, error) {
	return g.String(), nil
}

func (g *Genres) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*g = Genres{}
	case []byte:
		*g = ParseGenres(string(v))
	case string:
		*g = ParseGenres(v)
	default:
		return fmt.Errorf("genres: cannot scan %T", value)
	}
	return nil
}
