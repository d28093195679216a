package domain

import (
	"time"
)

// Venue is a place that hosts shows.
type Venue struct {
	ID                 int64  `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	City               string `json:"city" db:"city"`
	State              string `json:"state" db:"state"`
	Address            string `json:"address" db:"address"`
	Phone              string `json:"phone" db:"phone"`
	ImageLink          string `json:"image_link" db:"image_link"`
	FacebookLink       string `json:"facebook_link" db:"facebook_link"`
	Website            string `json:"website" db:"website"`
	Genres             Genres `json:"genres" db:"genres"`
	SeekingTalent      bool   `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string `json:"seeking_description" db:"seeking_description"`
}

// Artist performs shows and owns availability windows and a discography.
type Artist struct {
	ID                 int64  `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	City               string `json:"city" db:"city"`
	State              string `json:"state" db:"state"`
	Phone              string `json:"phone" db:"phone"`
	ImageLink          string `json:"image_link" db:"image_link"`
	FacebookLink       string `json:"facebook_link" db:"facebook_link"`
	Website            string `json:"website" db:"website"`
	Genres             Genres `json:"genres" db:"genres"`
	SeekingVenue       bool   `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string `json:"seeking_description" db:"seeking_description"`
}

// Show books an artist into a venue at a point in time. It has no life of
// its own: removing either owner removes the show.
type Show struct {
	ID        int64     `json:"id" db:"id"`
	VenueID   int64     `json:"venue_id" db:"venue_id"`
	ArtistID  int64     `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// ShowListing is a show joined with the names and images of both owners.
type ShowListing struct {
	ID              int64     `json:"id" db:"id"`
	VenueID         int64     `json:"venue_id" db:"venue_id"`
	VenueName       string    `json:"venue_name" db:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link" db:"venue_image_link"`
	ArtistID        int64     `json:"artist_id" db:"artist_id"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link" db:"artist_image_link"`
	StartTime       time.Time `json:"start_time" db:"start_time"`
}

// Availability is an inclusive window during which an artist can be booked.
type Availability struct {
	ID        int64     `json:"id" db:"id"`
	ArtistID  int64     `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
}

// Contains reports whether t falls inside the window, bounds included.
func (a Availability) Contains(t time.Time) bool {
	return !t.Before(a.StartTime) && !t.After(a.EndTime)
}

type Album struct {
	ID       int64  `json:"id" db:"id"`
	ArtistID int64  `json:"artist_id" db:"artist_id"`
	Name     string `json:"name" db:"name"`
	Year     *int   `json:"year,omitempty" db:"year"`
}

type Song struct {
	ID      int64  `json:"id" db:"id"`
	AlbumID int64  `json:"album_id" db:"album_id"`
	Name    string `json:"name" db:"name"`
}

// Listing is the compact form used by lists and search results.
type Listing struct {
	ID               int64  `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows" db:"-"`
}
