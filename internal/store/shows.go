package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
)

const showListingQuery = `SELECT
	s.id, s.venue_id, v.name AS venue_name, v.image_link AS venue_image_link,
	s.artist_id, a.name AS artist_name, a.image_link AS artist_image_link,
	s.start_time
FROM shows s
JOIN venues v ON v.id = s.venue_id
JOIN artists a ON a.id = s.artist_id`

// CreateShow inserts a show after checking that both owners exist.
func (t *Tx) CreateShow(ctx context.Context, s *domain.Show) error {
	if err := t.checkShowOwners(ctx, s); err != nil {
		return err
	}
	id, err := t.insert(ctx, `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		s.VenueID, s.ArtistID, s.StartTime.UTC(),
	)
	if err != nil {
		return persistence("create show", err)
	}
	s.ID = id
	return nil
}

func (t *Tx) GetShow(ctx context.Context, id int64) (*domain.Show, error) {
	var s domain.Show
	err := t.get(ctx, &s, `SELECT id, venue_id, artist_id, start_time FROM shows WHERE id = ?`, id)
	if err != nil {
		return nil, classify("get show", "show", id, err)
	}
	s.StartTime = s.StartTime.UTC()
	return &s, nil
}

func (t *Tx) UpdateShow(ctx context.Context, s *domain.Show) error {
	if err := t.mustExist(ctx, "show", constants.ShowsTable, s.ID); err != nil {
		return err
	}
	if err := t.checkShowOwners(ctx, s); err != nil {
		return err
	}
	_, err := t.exec(ctx, `UPDATE shows SET venue_id = ?, artist_id = ?, start_time = ? WHERE id = ?`,
		s.VenueID, s.ArtistID, s.StartTime.UTC(), s.ID,
	)
	if err != nil {
		return persistence("update show", err)
	}
	return nil
}

func (t *Tx) DeleteShow(ctx context.Context, id int64) error {
	if err := t.mustExist(ctx, "show", constants.ShowsTable, id); err != nil {
		return err
	}
	if _, err := t.exec(ctx, `DELETE FROM shows WHERE id = ?`, id); err != nil {
		return persistence("delete show", err)
	}
	return nil
}

// ListShows returns every show with both owners joined, by start time.
func (t *Tx) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	return t.showListings(ctx, "list shows", showListingQuery+` ORDER BY s.start_time, s.id`)
}

func (t *Tx) ShowsForVenue(ctx context.Context, venueID int64) ([]domain.ShowListing, error) {
	return t.showListings(ctx, "venue shows",
		showListingQuery+` WHERE s.venue_id = ? ORDER BY s.start_time, s.id`, venueID)
}

func (t *Tx) ShowsForArtist(ctx context.Context, artistID int64) ([]domain.ShowListing, error) {
	return t.showListings(ctx, "artist shows",
		showListingQuery+` WHERE s.artist_id = ? ORDER BY s.start_time, s.id`, artistID)
}

// ShowTimesByVenue returns the start times of the shows of each venue.
// Venues without shows are absent from the map.
func (t *Tx) ShowTimesByVenue(ctx context.Context, venueIDs []int64) (map[int64][]time.Time, error) {
	return t.showTimes(ctx, "venue_id", venueIDs)
}

func (t *Tx) ShowTimesByArtist(ctx context.Context, artistIDs []int64) (map[int64][]time.Time, error) {
	return t.showTimes(ctx, "artist_id", artistIDs)
}

func (t *Tx) showTimes(ctx context.Context, ownerColumn string, ids []int64) (map[int64][]time.Time, error) {
	out := make(map[int64][]time.Time, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+ownerColumn+` AS owner_id, start_time FROM shows WHERE `+ownerColumn+` IN (?)`, ids)
	if err != nil {
		return nil, persistence("build show times query", err)
	}

	var rows []struct {
		OwnerID   int64     `db:"owner_id"`
		StartTime time.Time `db:"start_time"`
	}
	if err := t.sel(ctx, &rows, query, args...); err != nil {
		return nil, persistence("show times", err)
	}
	for _, r := range rows {
		out[r.OwnerID] = append(out[r.OwnerID], r.StartTime.UTC())
	}
	return out, nil
}

func (t *Tx) showListings(ctx context.Context, op, query string, args ...any) ([]domain.ShowListing, error) {
	shows := make([]domain.ShowListing, 0)
	if err := t.sel(ctx, &shows, query, args...); err != nil {
		return nil, persistence(op, err)
	}
	for i := range shows {
		shows[i].StartTime = shows[i].StartTime.UTC()
	}
	return shows, nil
}

func (t *Tx) checkShowOwners(ctx context.Context, s *domain.Show) error {
	if err := t.mustExist(ctx, "venue", constants.VenuesTable, s.VenueID); err != nil {
		return err
	}
	return t.mustExist(ctx, "artist", constants.ArtistsTable, s.ArtistID)
}
