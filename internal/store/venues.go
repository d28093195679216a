package store

import (
	"context"
	"strings"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
	website, genres, seeking_talent, seeking_description`

func (t *Tx) CreateVenue(ctx context.Context, v *domain.Venue) error {
	id, err := t.insert(ctx, `INSERT INTO venues (
		name, city, state, address, phone, image_link, facebook_link,
		website, genres, seeking_talent, seeking_description
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink,
		v.Website, v.Genres, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return persistence("create venue", err)
	}
	v.ID = id
	return nil
}

func (t *Tx) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	var v domain.Venue
	err := t.get(ctx, &v, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id)
	if err != nil {
		return nil, classify("get venue", "venue", id, err)
	}
	return &v, nil
}

func (t *Tx) UpdateVenue(ctx context.Context, v *domain.Venue) error {
	if err := t.mustExist(ctx, "venue", constants.VenuesTable, v.ID); err != nil {
		return err
	}
	_, err := t.exec(ctx, `UPDATE venues SET
		name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
		facebook_link = ?, website = ?, genres = ?, seeking_talent = ?, seeking_description = ?
	WHERE id = ?`,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, v.Genres, v.SeekingTalent, v.SeekingDescription,
		v.ID,
	)
	if err != nil {
		return persistence("update venue", err)
	}
	return nil
}

// DeleteVenue removes the venue and its shows.
func (t *Tx) DeleteVenue(ctx context.Context, id int64) error {
	if err := t.mustExist(ctx, "venue", constants.VenuesTable, id); err != nil {
		return err
	}
	if _, err := t.exec(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return persistence("delete venue shows", err)
	}
	if _, err := t.exec(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return persistence("delete venue", err)
	}
	return nil
}

// ListVenues returns every venue ordered by id.
func (t *Tx) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	venues := make([]domain.Venue, 0)
	if err := t.sel(ctx, &venues, `SELECT `+venueColumns+` FROM venues ORDER BY id`); err != nil {
		return nil, persistence("list venues", err)
	}
	return venues, nil
}

// SearchVenues matches term as a case-insensitive literal substring of the
// venue name. An empty term matches every venue.
func (t *Tx) SearchVenues(ctx context.Context, term string) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0)
	err := t.sel(ctx, &out,
		`SELECT id, name FROM venues WHERE `+t.lowerName()+` LIKE ? ESCAPE '!' ORDER BY id`,
		likePattern(term),
	)
	if err != nil {
		return nil, persistence("search venues", err)
	}
	return out, nil
}

// RecentVenues returns the most recently listed venues, newest first.
func (t *Tx) RecentVenues(ctx context.Context, limit int) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0)
	if err := t.sel(ctx, &out, `SELECT id, name FROM venues ORDER BY id DESC LIMIT ?`, limit); err != nil {
		return nil, persistence("recent venues", err)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern lowercases term and escapes LIKE wildcards with '!' for a
// substring match. Whitespace in term is significant.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
