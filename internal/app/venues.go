package app

import (
	"context"
	"time"

	"github.com/cesargomez89/fyyur/internal/domain"
	"github.com/cesargomez89/fyyur/internal/events"
	"github.com/cesargomez89/fyyur/internal/logger"
	"github.com/cesargomez89/fyyur/internal/schedule"
	"github.com/cesargomez89/fyyur/internal/store"
)

type VenueService struct {
	*deps
	log *logger.Logger
}

func (s *VenueService) Create(ctx context.Context, in VenueInput) (*domain.Venue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	v := in.venue(0)
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.CreateVenue(ctx, v)
	}); err != nil {
		return nil, err
	}
	s.log.WithVenue(v.ID).Info("Venue created", "name", v.Name)
	return v, nil
}

func (s *VenueService) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	var v *domain.Venue
	err := s.Repo.View(ctx, func(tx *store.Tx) error {
		var err error
		v, err = tx.GetVenue(ctx, id)
		return err
	})
	return v, err
}

// Update replaces every editable field of the venue.
func (s *VenueService) Update(ctx context.Context, id int64, in VenueInput) (*domain.Venue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	v := in.venue(id)
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.UpdateVenue(ctx, v)
	}); err != nil {
		return nil, err
	}
	s.log.WithVenue(id).Info("Venue updated")
	return v, nil
}

// Delete removes the venue and all of its shows.
func (s *VenueService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.DeleteVenue(ctx, id)
	}); err != nil {
		return err
	}
	s.log.WithVenue(id).Info("Venue deleted")
	s.publish(ctx, s.log, events.New(events.VenueDeleted, id, nil))
	return nil
}

// Detail returns the venue with its shows split into past and upcoming.
func (s *VenueService) Detail(ctx context.Context, id int64) (*VenueDetail, error) {
	now := s.now()
	var detail *VenueDetail
	err := s.Repo.View(ctx, func(tx *store.Tx) error {
		v, err := tx.GetVenue(ctx, id)
		if err != nil {
			return err
		}
		shows, err := tx.ShowsForVenue(ctx, id)
		if err != nil {
			return err
		}
		past, upcoming := schedule.Partition(now, shows, showStart)
		detail = &VenueDetail{
			Venue:              *v,
			PastShows:          past,
			UpcomingShows:      upcoming,
			PastShowsCount:     len(past),
			UpcomingShowsCount: len(upcoming),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func showStart(s domain.ShowListing) time.Time { return s.StartTime }
