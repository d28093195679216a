package store

import (
	"context"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
)

func (t *Tx) CreateAvailability(ctx context.Context, w *domain.Availability) error {
	if err := t.mustExist(ctx, "artist", constants.ArtistsTable, w.ArtistID); err != nil {
		return err
	}
	id, err := t.insert(ctx, `INSERT INTO availability (artist_id, start_time, end_time) VALUES (?, ?, ?)`,
		w.ArtistID, w.StartTime.UTC(), w.EndTime.UTC(),
	)
	if err != nil {
		return persistence("create availability", err)
	}
	w.ID = id
	return nil
}

func (t *Tx) GetAvailability(ctx context.Context, id int64) (*domain.Availability, error) {
	var w domain.Availability
	err := t.get(ctx, &w, `SELECT id, artist_id, start_time, end_time FROM availability WHERE id = ?`, id)
	if err != nil {
		return nil, classify("get availability", "availability", id, err)
	}
	w.StartTime, w.EndTime = w.StartTime.UTC(), w.EndTime.UTC()
	return &w, nil
}

// UpdateAvailability moves a window. The owning artist cannot change.
func (t *Tx) UpdateAvailability(ctx context.Context, w *domain.Availability) error {
	if err := t.mustExist(ctx, "availability", constants.AvailabilityTable, w.ID); err != nil {
		return err
	}
	_, err := t.exec(ctx, `UPDATE availability SET start_time = ?, end_time = ? WHERE id = ?`,
		w.StartTime.UTC(), w.EndTime.UTC(), w.ID,
	)
	if err != nil {
		return persistence("update availability", err)
	}
	return nil
}

func (t *Tx) DeleteAvailability(ctx context.Context, id int64) error {
	if err := t.mustExist(ctx, "availability", constants.AvailabilityTable, id); err != nil {
		return err
	}
	if _, err := t.exec(ctx, `DELETE FROM availability WHERE id = ?`, id); err != nil {
		return persistence("delete availability", err)
	}
	return nil
}

// AvailabilityForArtist lists the artist's windows by start time.
func (t *Tx) AvailabilityForArtist(ctx context.Context, artistID int64) ([]domain.Availability, error) {
	windows := make([]domain.Availability, 0)
	err := t.sel(ctx, &windows,
		`SELECT id, artist_id, start_time, end_time FROM availability WHERE artist_id = ? ORDER BY start_time, id`,
		artistID,
	)
	if err != nil {
		return nil, persistence("list availability", err)
	}
	for i := range windows {
		windows[i].StartTime = windows[i].StartTime.UTC()
		windows[i].EndTime = windows[i].EndTime.UTC()
	}
	return windows, nil
}
