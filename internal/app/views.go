package app

import "github.com/cesargomez89/fyyur/internal/domain"

type VenueDetail struct {
	domain.Venue
	PastShows          []domain.ShowListing `json:"past_shows"`
	UpcomingShows      []domain.ShowListing `json:"upcoming_shows"`
	PastShowsCount     int                  `json:"past_shows_count"`
	UpcomingShowsCount int                  `json:"upcoming_shows_count"`
}

type AlbumDetail struct {
	domain.Album
	Songs []domain.Song `json:"songs"`
}

type ArtistDetail struct {
	domain.Artist
	PastShows          []domain.ShowListing  `json:"past_shows"`
	UpcomingShows      []domain.ShowListing  `json:"upcoming_shows"`
	PastShowsCount     int                   `json:"past_shows_count"`
	UpcomingShowsCount int                   `json:"upcoming_shows_count"`
	Availability       []domain.Availability `json:"availability"`
	Albums             []AlbumDetail         `json:"albums"`
}

// Area is one (city, state) group of the venue listing.
type Area struct {
	City   string           `json:"city"`
	State  string           `json:"state"`
	Venues []domain.Listing `json:"venues"`
}

type SearchResult struct {
	Count int              `json:"count"`
	Data  []domain.Listing `json:"data"`
}

type Home struct {
	RecentVenues  []domain.Listing `json:"recent_venues"`
	RecentArtists []domain.Listing `json:"recent_artists"`
}
