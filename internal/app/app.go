// Package app holds the booking and query services. Every service runs its
// work through store transactions and publishes events only after commit.
package app

import (
	"context"
	"time"

	"github.com/cesargomez89/fyyur/internal/cache"
	"github.com/cesargomez89/fyyur/internal/events"
	"github.com/cesargomez89/fyyur/internal/logger"
	"github.com/cesargomez89/fyyur/internal/store"
)

type App struct {
	Venues   *VenueService
	Artists  *ArtistService
	Bookings *BookingService
	Search   *SearchService
}

type deps struct {
	Repo      *store.DB
	Logger    *logger.Logger
	now       func() time.Time
	loc       *time.Location
	publisher events.Publisher
	cache     cache.Store
}

type Option func(*deps)

// WithClock replaces time.Now as the reference for past/upcoming.
func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

// WithLocation sets the zone in which submitted times are read.
func WithLocation(loc *time.Location) Option {
	return func(d *deps) { d.loc = loc }
}

func WithPublisher(p events.Publisher) Option {
	return func(d *deps) { d.publisher = p }
}

// WithCache enables the locality cache. It is invalidated after every
// committed write on repo.
func WithCache(c cache.Store) Option {
	return func(d *deps) { d.cache = c }
}

func New(repo *store.DB, log *logger.Logger, opts ...Option) *App {
	d := &deps{
		Repo:      repo,
		Logger:    log,
		now:       time.Now,
		loc:       time.UTC,
		publisher: events.Nop{},
		cache:     cache.Nop{},
	}
	for _, opt := range opts {
		opt(d)
	}

	if _, ok := d.cache.(cache.Nop); !ok {
		cacheLog := log.WithComponent("cache")
		repo.OnCommit(func(ctx context.Context) {
			if err := d.cache.Invalidate(context.WithoutCancel(ctx)); err != nil {
				cacheLog.Warn("Failed to invalidate cache", "error", err)
			}
		})
	}

	return &App{
		Venues:   &VenueService{deps: d, log: log.WithComponent("venues")},
		Artists:  &ArtistService{deps: d, log: log.WithComponent("artists")},
		Bookings: &BookingService{deps: d, log: log.WithComponent("bookings")},
		Search:   &SearchService{deps: d, log: log.WithComponent("search")},
	}
}

// publish delivers e. Failures are logged and never reach the caller.
func (d *deps) publish(ctx context.Context, log *logger.Logger, e events.Event) {
	if err := d.publisher.Publish(context.WithoutCancel(ctx), e); err != nil {
		log.Warn("Failed to publish event", "event_id", e.ID, "type", e.Type, "error", err)
	}
}
