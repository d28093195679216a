package store

import (
	"context"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
)

const artistColumns = `id, name, city, state, phone, image_link, facebook_link,
	website, genres, seeking_venue, seeking_description`

func (t *Tx) CreateArtist(ctx context.Context, a *domain.Artist) error {
	id, err := t.insert(ctx, `INSERT INTO artists (
		name, city, state, phone, image_link, facebook_link,
		website, genres, seeking_venue, seeking_description
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink,
		a.Website, a.Genres, a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return persistence("create artist", err)
	}
	a.ID = id
	return nil
}

func (t *Tx) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	var a domain.Artist
	err := t.get(ctx, &a, `SELECT `+artistColumns+` FROM artists WHERE id = ?`, id)
	if err != nil {
		return nil, classify("get artist", "artist", id, err)
	}
	return &a, nil
}

func (t *Tx) UpdateArtist(ctx context.Context, a *domain.Artist) error {
	if err := t.mustExist(ctx, "artist", constants.ArtistsTable, a.ID); err != nil {
		return err
	}
	_, err := t.exec(ctx, `UPDATE artists SET
		name = ?, city = ?, state = ?, phone = ?, image_link = ?, facebook_link = ?,
		website = ?, genres = ?, seeking_venue = ?, seeking_description = ?
	WHERE id = ?`,
		a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink,
		a.Website, a.Genres, a.SeekingVenue, a.SeekingDescription,
		a.ID,
	)
	if err != nil {
		return persistence("update artist", err)
	}
	return nil
}

// DeleteArtist removes the artist with its shows, availability windows,
// albums and the albums' songs.
func (t *Tx) DeleteArtist(ctx context.Context, id int64) error {
	if err := t.mustExist(ctx, "artist", constants.ArtistsTable, id); err != nil {
		return err
	}

	steps := []struct {
		op    string
		query string
	}{
		{"delete artist songs", `DELETE FROM songs WHERE album_id IN (SELECT id FROM albums WHERE artist_id = ?)`},
		{"delete artist albums", `DELETE FROM albums WHERE artist_id = ?`},
		{"delete artist availability", `DELETE FROM availability WHERE artist_id = ?`},
		{"delete artist shows", `DELETE FROM shows WHERE artist_id = ?`},
		{"delete artist", `DELETE FROM artists WHERE id = ?`},
	}
	for _, s := range steps {
		if _, err := t.exec(ctx, s.query, id); err != nil {
			return persistence(s.op, err)
		}
	}
	return nil
}

// ListArtists returns id and name of every artist ordered by id.
func (t *Tx) ListArtists(ctx context.Context) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0)
	if err := t.sel(ctx, &out, `SELECT id, name FROM artists ORDER BY id`); err != nil {
		return nil, persistence("list artists", err)
	}
	return out, nil
}

// SearchArtists is the artist counterpart of SearchVenues.
func (t *Tx) SearchArtists(ctx context.Context, term string) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0)
	err := t.sel(ctx, &out,
		`SELECT id, name FROM artists WHERE `+t.lowerName()+` LIKE ? ESCAPE '!' ORDER BY id`,
		likePattern(term),
	)
	if err != nil {
		return nil, persistence("search artists", err)
	}
	return out, nil
}

func (t *Tx) RecentArtists(ctx context.Context, limit int) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0)
	if err := t.sel(ctx, &out, `SELECT id, name FROM artists ORDER BY id DESC LIMIT ?`, limit); err != nil {
		return nil, persistence("recent artists", err)
	}
	return out, nil
}
