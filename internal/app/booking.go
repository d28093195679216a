package app

import (
	"context"
	"errors"
	"strings"

	"github.com/cesargomez89/fyyur/internal/domain"
	"github.com/cesargomez89/fyyur/internal/events"
	"github.com/cesargomez89/fyyur/internal/logger"
	"github.com/cesargomez89/fyyur/internal/schedule"
	"github.com/cesargomez89/fyyur/internal/store"
)

type BookingStatus string

const (
	BookingCreated  BookingStatus = "created"
	BookingConflict BookingStatus = "conflict"
)

// BookingOutcome is the result of a booking attempt that reached the
// availability check. A conflict is an outcome, not an error.
type BookingOutcome struct {
	Status   BookingStatus                `json:"status"`
	ShowID   int64                        `json:"show_id,omitempty"`
	Show     *domain.Show                 `json:"show,omitempty"`
	Conflict *domain.AvailabilityConflict `json:"conflict,omitempty"`
}

// errRejected rolls back a transaction whose booking was not admitted.
var errRejected = errors.New("booking rejected")

type BookingService struct {
	*deps
	log *logger.Logger
}

// CreateShow validates in, checks the artist's availability and inserts
// the show, all in one transaction.
func (s *BookingService) CreateShow(ctx context.Context, in ShowInput) (BookingOutcome, error) {
	show, err := in.show(s.loc)
	if err != nil {
		return BookingOutcome{}, err
	}

	var outcome BookingOutcome
	err = s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		if _, err := tx.GetVenue(ctx, show.VenueID); err != nil {
			return err
		}
		conflict, err := s.admit(ctx, tx, show)
		if err != nil {
			return err
		}
		if conflict != nil {
			outcome = BookingOutcome{Status: BookingConflict, Conflict: conflict}
			return errRejected
		}
		if err := tx.CreateShow(ctx, show); err != nil {
			return err
		}
		outcome = BookingOutcome{Status: BookingCreated, ShowID: show.ID, Show: show}
		return nil
	})
	return s.finish(ctx, show, outcome, err, events.ShowBooked)
}

// RescheduleShow moves show id to startTime. The new time must satisfy the
// artist's availability like a new booking.
func (s *BookingService) RescheduleShow(ctx context.Context, id int64, startTime string) (BookingOutcome, error) {
	start, verrs := parseDateTime("start_time", strings.TrimSpace(startTime), s.loc)
	if err := domain.ValidationErrors(verrs).Err(); err != nil {
		return BookingOutcome{}, err
	}

	var (
		show    *domain.Show
		outcome BookingOutcome
	)
	err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		var err error
		show, err = tx.GetShow(ctx, id)
		if err != nil {
			return err
		}
		show.StartTime = start
		conflict, err := s.admit(ctx, tx, show)
		if err != nil {
			return err
		}
		if conflict != nil {
			outcome = BookingOutcome{Status: BookingConflict, ShowID: id, Conflict: conflict}
			return errRejected
		}
		if err := tx.UpdateShow(ctx, show); err != nil {
			return err
		}
		outcome = BookingOutcome{Status: BookingCreated, ShowID: id, Show: show}
		return nil
	})
	if show == nil {
		show = &domain.Show{ID: id, StartTime: start}
	}
	return s.finish(ctx, show, outcome, err, events.ShowRescheduled)
}

func (s *BookingService) CancelShow(ctx context.Context, id int64) error {
	var show *domain.Show
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		var err error
		if show, err = tx.GetShow(ctx, id); err != nil {
			return err
		}
		return tx.DeleteShow(ctx, id)
	}); err != nil {
		return err
	}
	s.log.WithShow(id, show.VenueID, show.ArtistID).Info("Show cancelled")
	s.publish(ctx, s.log, events.New(events.ShowCancelled, id, showData(show)))
	return nil
}

func (s *BookingService) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	var shows []domain.ShowListing
	err := s.Repo.View(ctx, func(tx *store.Tx) error {
		var err error
		shows, err = tx.ListShows(ctx)
		return err
	})
	return shows, err
}

// admit loads the artist and its windows and runs the availability check.
// It returns a conflict when the show may not be booked.
func (s *BookingService) admit(ctx context.Context, tx *store.Tx, show *domain.Show) (*domain.AvailabilityConflict, error) {
	if _, err := tx.GetArtist(ctx, show.ArtistID); err != nil {
		return nil, err
	}
	windows, err := tx.AvailabilityForArtist(ctx, show.ArtistID)
	if err != nil {
		return nil, err
	}
	return schedule.CheckAvailability(show.ArtistID, show.StartTime, windows).Conflict(show.ArtistID, show.StartTime), nil
}

func (s *BookingService) finish(ctx context.Context, show *domain.Show, outcome BookingOutcome, err error, typ events.Type) (BookingOutcome, error) {
	switch {
	case errors.Is(err, errRejected):
		s.log.WithArtist(show.ArtistID).Info("Booking rejected",
			"venue_id", show.VenueID, "start_time", show.StartTime, "reason", schedule.ReasonAvailabilityConflict)
		s.publish(ctx, s.log, events.New(events.ShowRejected, show.ArtistID, showData(show)))
		return outcome, nil
	case err != nil:
		return BookingOutcome{}, err
	}
	s.log.WithShow(show.ID, show.VenueID, show.ArtistID).Info("Show scheduled", "event", typ, "start_time", show.StartTime)
	s.publish(ctx, s.log, events.New(typ, show.ID, showData(show)))
	return outcome, nil
}

func showData(s *domain.Show) events.ShowData {
	return events.ShowData{ShowID: s.ID, VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.StartTime}
}
