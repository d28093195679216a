package app

import (
	"context"
	"time"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
	"github.com/cesargomez89/fyyur/internal/logger"
	"github.com/cesargomez89/fyyur/internal/schedule"
	"github.com/cesargomez89/fyyur/internal/store"
)

const localityCacheKey = "areas"

type SearchService struct {
	*deps
	log *logger.Logger
}

// localitySnapshot is the raw input of VenuesByLocality. Upcoming counts
// are derived from it at read time so a cached copy never goes stale as
// time passes.
type localitySnapshot struct {
	Venues []localityVenue `json:"venues"`
}

type localityVenue struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	City   string      `json:"city"`
	State  string      `json:"state"`
	Starts []time.Time `json:"starts"`
}

func (s *SearchService) SearchVenues(ctx context.Context, term string) (*SearchResult, error) {
	return s.search(ctx, term, (*store.Tx).SearchVenues, (*store.Tx).ShowTimesByVenue)
}

func (s *SearchService) SearchArtists(ctx context.Context, term string) (*SearchResult, error) {
	return s.search(ctx, term, (*store.Tx).SearchArtists, (*store.Tx).ShowTimesByArtist)
}

func (s *SearchService) search(
	ctx context.Context,
	term string,
	find func(*store.Tx, context.Context, string) ([]domain.Listing, error),
	times func(*store.Tx, context.Context, []int64) (map[int64][]time.Time, error),
) (*SearchResult, error) {
	now := s.now()
	var matches []domain.Listing
	err := s.Repo.View(ctx, func(tx *store.Tx) error {
		var err error
		if matches, err = find(tx, ctx, term); err != nil {
			return err
		}
		return s.countUpcoming(ctx, tx, now, matches, times)
	})
	if err != nil {
		return nil, err
	}
	return &SearchResult{Count: len(matches), Data: matches}, nil
}

// VenuesByLocality groups venues by their exact (city, state) pair. Groups
// appear in the order of their lowest venue id; venues are ordered by id.
func (s *SearchService) VenuesByLocality(ctx context.Context) ([]Area, error) {
	snap, err := s.localitySnapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	type locality struct{ city, state string }
	index := make(map[locality]int)
	areas := make([]Area, 0)
	for _, v := range snap.Venues {
		key := locality{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []domain.Listing{}})
		}
		areas[i].Venues = append(areas[i].Venues, domain.Listing{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: schedule.CountUpcoming(now, v.Starts),
		})
	}
	return areas, nil
}

// Recent lists the most recently listed venues and artists, newest first.
func (s *SearchService) Recent(ctx context.Context, limit int) (*Home, error) {
	if limit <= 0 {
		limit = constants.DefaultRecentLimit
	}
	home := &Home{}
	err := s.Repo.View(ctx, func(tx *store.Tx) error {
		var err error
		if home.RecentVenues, err = tx.RecentVenues(ctx, limit); err != nil {
			return err
		}
		home.RecentArtists, err = tx.RecentArtists(ctx, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return home, nil
}

func (s *SearchService) countUpcoming(
	ctx context.Context,
	tx *store.Tx,
	now time.Time,
	listings []domain.Listing,
	times func(*store.Tx, context.Context, []int64) (map[int64][]time.Time, error),
) error {
	ids := make([]int64, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	byOwner, err := times(tx, ctx, ids)
	if err != nil {
		return err
	}
	for i := range listings {
		listings[i].NumUpcomingShows = schedule.CountUpcoming(now, byOwner[listings[i].ID])
	}
	return nil
}

// localitySnapshot serves the snapshot from cache when possible. Cache
// failures degrade to a database read.
func (s *SearchService) localitySnapshot(ctx context.Context) (*localitySnapshot, error) {
	gen, err := s.cache.Generation(ctx)
	cacheOK := err == nil
	if err != nil {
		s.log.Warn("Cache unavailable", "error", err)
	}

	if cacheOK {
		var snap localitySnapshot
		hit, err := s.cache.Get(ctx, localityCacheKey, gen, &snap)
		if err != nil {
			s.log.Warn("Cache read failed", "key", localityCacheKey, "error", err)
		}
		if hit {
			return &snap, nil
		}
	}

	snap := &localitySnapshot{Venues: []localityVenue{}}
	err = s.Repo.View(ctx, func(tx *store.Tx) error {
		venues, err := tx.ListVenues(ctx)
		if err != nil {
			return err
		}
		ids := make([]int64, len(venues))
		for i, v := range venues {
			ids[i] = v.ID
		}
		starts, err := tx.ShowTimesByVenue(ctx, ids)
		if err != nil {
			return err
		}
		for _, v := range venues {
			snap.Venues = append(snap.Venues, localityVenue{
				ID: v.ID, Name: v.Name, City: v.City, State: v.State, Starts: starts[v.ID],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cacheOK {
		if err := s.cache.Set(ctx, localityCacheKey, gen, snap); err != nil {
			s.log.Warn("Cache write failed", "key", localityCacheKey, "error", err)
		}
	}
	return snap, nil
}
