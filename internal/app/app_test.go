package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cesargomez89/fyyur/internal/logger"
	"github.com/cesargomez89/fyyur/internal/store"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func setupApp(t *testing.T, opts ...Option) (*App, *store.DB) {
	t.Helper()
	db, err := store.NewSQLiteDB(filepath.Join(t.TempDir(), "fyyur.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	opts = append([]Option{WithClock(fixedClock)}, opts...)
	return New(db, logger.Discard(), opts...), db
}

// at formats testNow shifted by d in the submitted layout.
func at(d time.Duration) string {
	return testNow.Add(d).Format("2006-01-02 15:04:05")
}

const day = 24 * time.Hour

func createVenue(t *testing.T, a *App, name, city, state string) int64 {
	t.Helper()
	v, err := a.Venues.Create(context.Background(), VenueInput{
		Name:    name,
		City:    city,
		State:   state,
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz", "Reggae"},
	})
	require.NoError(t, err)
	return v.ID
}

func createArtist(t *testing.T, a *App, name string) int64 {
	t.Helper()
	ar, err := a.Artists.Create(context.Background(), ArtistInput{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	})
	require.NoError(t, err)
	return ar.ID
}

func addWindow(t *testing.T, a *App, artistID int64, start, end time.Duration) {
	t.Helper()
	_, err := a.Artists.AddAvailability(context.Background(), AvailabilityInput{
		ArtistID:  artistID,
		StartTime: at(start),
		EndTime:   at(end),
	})
	require.NoError(t, err)
}

func book(t *testing.T, a *App, venueID, artistID int64, start time.Duration) BookingOutcome {
	t.Helper()
	out, err := a.Bookings.CreateShow(context.Background(), ShowInput{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: at(start),
	})
	require.NoError(t, err)
	return out
}
