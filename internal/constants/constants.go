// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort          = "5000"
	DefaultDBDriver      = "sqlite"
	DefaultDBPath        = "fyyur.db"
	DefaultTimezone      = "UTC"
	DefaultCacheTTL      = 30 * time.Second
	DefaultCachePrefix   = "fyyur"
	DefaultEventsQueue   = "fyyur.events"
	DefaultRecentLimit   = 10
	DefaultShutdownGrace = 10 * time.Second
)

// DateTimeLayout is the wire layout of show and availability times.
const DateTimeLayout = "2006-01-02 15:04:05"

// Database tables
const (
	VenuesTable       = "venues"
	ArtistsTable      = "artists"
	ShowsTable        = "shows"
	AvailabilityTable = "availability"
	AlbumsTable       = "albums"
	SongsTable        = "songs"
)

// Field limits
const (
	MaxNameLength        = 120
	MaxLinkLength        = 500
	MaxDescriptionLength = 2000
)

// HTTP Status Codes
const (
	StatusOK            = 200
	StatusCreated       = 201
	StatusNoContent     = 204
	StatusBadRequest    = 400
	StatusNotFound      = 404
	StatusConflict      = 409
	StatusInternalError = 500
)
