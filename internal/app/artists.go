package app

import (
	"context"

	"github.com/cesargomez89/fyyur/internal/domain"
	"github.com/cesargomez89/fyyur/internal/events"
	"github.com/cesargomez89/fyyur/internal/logger"
	"github.com/cesargomez89/fyyur/internal/schedule"
	"github.com/cesargomez89/fyyur/internal/store"
)

type ArtistService struct {
	*deps
	log *logger.Logger
}

func (s *ArtistService) Create(ctx context.Context, in ArtistInput) (*domain.Artist, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := in.artist(0)
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.CreateArtist(ctx, a)
	}); err != nil {
		return nil, err
	}
	s.log.WithArtist(a.ID).Info("Artist created", "name", a.Name)
	return a, nil
}

func (s *ArtistService) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	var a *domain.Artist
	err := s.Repo.View(ctx, func(tx *store.Tx) error {
		var err error
		a, err = tx.GetArtist(ctx, id)
		return err
	})
	return a, err
}

func (s *ArtistService) Update(ctx context.Context, id int64, in ArtistInput) (*domain.Artist, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := in.artist(id)
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.UpdateArtist(ctx, a)
	}); err != nil {
		return nil, err
	}
	s.log.WithArtist(id).Info("Artist updated")
	return a, nil
}

// Delete removes the artist with shows, availability, albums and songs.
func (s *ArtistService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.DeleteArtist(ctx, id)
	}); err != nil {
		return err
	}
	s.log.WithArtist(id).Info("Artist deleted")
	s.publish(ctx, s.log, events.New(events.ArtistDeleted, id, nil))
	return nil
}

func (s *ArtistService) List(ctx context.Context) ([]domain.Listing, error) {
	var out []domain.Listing
	err := s.Repo.View(ctx, func(tx *store.Tx) error {
		var err error
		out, err = tx.ListArtists(ctx)
		return err
	})
	return out, err
}

// Detail returns the artist with classified shows, availability windows
// and albums with their songs.
func (s *ArtistService) Detail(ctx context.Context, id int64) (*ArtistDetail, error) {
	now := s.now()
	var detail *ArtistDetail
	err := s.Repo.View(ctx, func(tx *store.Tx) error {
		a, err := tx.GetArtist(ctx, id)
		if err != nil {
			return err
		}
		shows, err := tx.ShowsForArtist(ctx, id)
		if err != nil {
			return err
		}
		windows, err := tx.AvailabilityForArtist(ctx, id)
		if err != nil {
			return err
		}
		albums, err := tx.AlbumsForArtist(ctx, id)
		if err != nil {
			return err
		}
		ids := make([]int64, len(albums))
		for i, al := range albums {
			ids[i] = al.ID
		}
		songs, err := tx.SongsForAlbums(ctx, ids)
		if err != nil {
			return err
		}

		past, upcoming := schedule.Partition(now, shows, showStart)
		detail = &ArtistDetail{
			Artist:             *a,
			PastShows:          past,
			UpcomingShows:      upcoming,
			PastShowsCount:     len(past),
			UpcomingShowsCount: len(upcoming),
			Availability:       windows,
			Albums:             make([]AlbumDetail, 0, len(albums)),
		}
		for _, al := range albums {
			albumSongs := songs[al.ID]
			if albumSongs == nil {
				albumSongs = []domain.Song{}
			}
			detail.Albums = append(detail.Albums, AlbumDetail{Album: al, Songs: albumSongs})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// AddAvailability declares a bookable window for in.ArtistID.
func (s *ArtistService) AddAvailability(ctx context.Context, in AvailabilityInput) (*domain.Availability, error) {
	w, err := in.window(s.loc, true)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.CreateAvailability(ctx, w)
	}); err != nil {
		return nil, err
	}
	s.log.WithArtist(w.ArtistID).Info("Availability added", "availability_id", w.ID)
	return w, nil
}

// UpdateAvailability moves window id. The owner is kept.
func (s *ArtistService) UpdateAvailability(ctx context.Context, id int64, in AvailabilityInput) (*domain.Availability, error) {
	w, err := in.window(s.loc, false)
	if err != nil {
		return nil, err
	}
	w.ID = id
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		if err := tx.UpdateAvailability(ctx, w); err != nil {
			return err
		}
		current, err := tx.GetAvailability(ctx, id)
		if err != nil {
			return err
		}
		w.ArtistID = current.ArtistID
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.WithArtist(w.ArtistID).Info("Availability updated", "availability_id", id)
	return w, nil
}

func (s *ArtistService) DeleteAvailability(ctx context.Context, id int64) error {
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.DeleteAvailability(ctx, id)
	}); err != nil {
		return err
	}
	s.log.Info("Availability deleted", "availability_id", id)
	return nil
}
