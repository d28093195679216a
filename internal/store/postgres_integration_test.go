//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cesargomez89/fyyur/internal/domain"
)

func setupPostgres(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("fyyur"),
		postgres.WithUsername("fyyur"),
		postgres.WithPassword("fyyur"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(ctx, DriverPostgres, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Migrate(ctx), "migrate must be idempotent")
	return db
}

func TestPostgres_LifecycleAndCascade(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	v := &domain.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street", Genres: domain.NewGenres("Jazz")}
	a := &domain.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"}
	at := time.Date(2035, 5, 21, 21, 30, 0, 0, time.UTC)
	show := &domain.Show{StartTime: at}
	album := &domain.Album{Name: "Petals"}
	song := &domain.Song{Name: "Bloom"}

	require.NoError(t, db.RunInTx(ctx, func(tx *Tx) error {
		if err := tx.CreateVenue(ctx, v); err != nil {
			return err
		}
		if err := tx.CreateArtist(ctx, a); err != nil {
			return err
		}
		show.VenueID, show.ArtistID = v.ID, a.ID
		if err := tx.CreateShow(ctx, show); err != nil {
			return err
		}
		album.ArtistID = a.ID
		if err := tx.CreateAlbum(ctx, album); err != nil {
			return err
		}
		song.AlbumID = album.ID
		return tx.CreateSong(ctx, song)
	}))
	assert.NotZero(t, v.ID)
	assert.NotZero(t, show.ID)

	require.NoError(t, db.View(ctx, func(tx *Tx) error {
		got, err := tx.SearchVenues(ctx, "musical")
		require.NoError(t, err)
		require.Len(t, got, 1)

		listings, err := tx.ShowsForVenue(ctx, v.ID)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.True(t, listings[0].StartTime.Equal(at))
		return nil
	}))

	require.NoError(t, db.RunInTx(ctx, func(tx *Tx) error { return tx.DeleteArtist(ctx, a.ID) }))

	require.NoError(t, db.View(ctx, func(tx *Tx) error {
		_, err := tx.GetShow(ctx, show.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		_, err = tx.GetSong(ctx, song.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		return nil
	}))
}
