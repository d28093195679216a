package app

import (
	"strings"
	"time"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
)

// VenueInput carries the submitted fields of a venue for create and update.
type VenueInput struct {
	Name               string   `form:"name" json:"name" yaml:"name"`
	City               string   `form:"city" json:"city" yaml:"city"`
	State              string   `form:"state" json:"state" yaml:"state"`
	Address            string   `form:"address" json:"address" yaml:"address"`
	Phone              string   `form:"phone" json:"phone" yaml:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link" yaml:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" yaml:"facebook_link"`
	Website            string   `form:"website" json:"website" yaml:"website"`
	Genres             []string `form:"genres" json:"genres" yaml:"genres"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent" yaml:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" yaml:"seeking_description"`
}

func (in *VenueInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.Website = strings.TrimSpace(in.Website)
	in.SeekingDescription = strings.TrimSpace(in.SeekingDescription)
}

// Validate trims the input and reports every invalid field.
func (in *VenueInput) Validate() error {
	in.normalize()

	var errs domain.ValidationErrors
	errs = append(errs, validateName("name", in.Name)...)
	errs = append(errs, validateName("city", in.City)...)
	errs = append(errs, validateName("state", in.State)...)
	errs = append(errs, validateRequired("address", in.Address)...)
	errs = append(errs, validateMaxLength("address", in.Address, constants.MaxNameLength)...)
	errs = append(errs, validatePhone("phone", in.Phone)...)
	errs = append(errs, validateURL("image_link", in.ImageLink)...)
	errs = append(errs, validateURL("facebook_link", in.FacebookLink)...)
	errs = append(errs, validateURL("website", in.Website)...)
	errs = append(errs, validateGenres("genres", in.Genres)...)
	errs = append(errs, validateMaxLength("seeking_description", in.SeekingDescription, constants.MaxDescriptionLength)...)
	return errs.Err()
}

func (in *VenueInput) venue(id int64) *domain.Venue {
	return &domain.Venue{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		Genres:             domain.NewGenres(in.Genres...),
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
}

type ArtistInput struct {
	Name               string   `form:"name" json:"name" yaml:"name"`
	City               string   `form:"city" json:"city" yaml:"city"`
	State              string   `form:"state" json:"state" yaml:"state"`
	Phone              string   `form:"phone" json:"phone" yaml:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link" yaml:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" yaml:"facebook_link"`
	Website            string   `form:"website" json:"website" yaml:"website"`
	Genres             []string `form:"genres" json:"genres" yaml:"genres"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue" yaml:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" yaml:"seeking_description"`
}

func (in *ArtistInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.Website = strings.TrimSpace(in.Website)
	in.SeekingDescription = strings.TrimSpace(in.SeekingDescription)

	var errs domain.ValidationErrors
	errs = append(errs, validateName("name", in.Name)...)
	errs = append(errs, validateName("city", in.City)...)
	errs = append(errs, validateName("state", in.State)...)
	errs = append(errs, validatePhone("phone", in.Phone)...)
	errs = append(errs, validateURL("image_link", in.ImageLink)...)
	errs = append(errs, validateURL("facebook_link", in.FacebookLink)...)
	errs = append(errs, validateURL("website", in.Website)...)
	errs = append(errs, validateGenres("genres", in.Genres)...)
	errs = append(errs, validateMaxLength("seeking_description", in.SeekingDescription, constants.MaxDescriptionLength)...)
	return errs.Err()
}

func (in *ArtistInput) artist(id int64) *domain.Artist {
	return &domain.Artist{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		Genres:             domain.NewGenres(in.Genres...),
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
}

// ShowInput requests a booking. StartTime uses the YYYY-MM-DD HH:MM:SS
// layout and is read in the service's configured location.
type ShowInput struct {
	VenueID   int64  `form:"venue_id" json:"venue_id" yaml:"venue_id"`
	ArtistID  int64  `form:"artist_id" json:"artist_id" yaml:"artist_id"`
	StartTime string `form:"start_time" json:"start_time" yaml:"start_time"`
}

func (in *ShowInput) show(loc *time.Location) (*domain.Show, error) {
	in.StartTime = strings.TrimSpace(in.StartTime)

	var errs domain.ValidationErrors
	errs = append(errs, validateID("venue_id", in.VenueID)...)
	errs = append(errs, validateID("artist_id", in.ArtistID)...)
	start, terrs := parseDateTime("start_time", in.StartTime, loc)
	errs = append(errs, terrs...)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &domain.Show{VenueID: in.VenueID, ArtistID: in.ArtistID, StartTime: start}, nil
}

// AvailabilityInput declares a window, bounds included. ArtistID is only
// read on create.
type AvailabilityInput struct {
	ArtistID  int64  `form:"artist_id" json:"artist_id" yaml:"-"`
	StartTime string `form:"start_time" json:"start_time" yaml:"start_time"`
	EndTime   string `form:"end_time" json:"end_time" yaml:"end_time"`
}

func (in *AvailabilityInput) window(loc *time.Location, requireOwner bool) (*domain.Availability, error) {
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)

	var errs domain.ValidationErrors
	if requireOwner {
		errs = append(errs, validateID("artist_id", in.ArtistID)...)
	}
	start, serrs := parseDateTime("start_time", in.StartTime, loc)
	errs = append(errs, serrs...)
	end, eerrs := parseDateTime("end_time", in.EndTime, loc)
	errs = append(errs, eerrs...)
	if len(serrs) == 0 && len(eerrs) == 0 && end.Before(start) {
		errs = append(errs, domain.ValidationError{Field: "end_time", Message: "must not be before start_time"})
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &domain.Availability{ArtistID: in.ArtistID, StartTime: start, EndTime: end}, nil
}

// AlbumInput adds or renames an album. An empty Year stores no year.
type AlbumInput struct {
	ArtistID int64  `form:"artist_id" json:"artist_id" yaml:"-"`
	Name     string `form:"album_name" json:"name" yaml:"name"`
	Year     string `form:"album_year" json:"year" yaml:"year"`
}

func (in *AlbumInput) album(requireOwner bool) (*domain.Album, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Year = strings.TrimSpace(in.Year)

	var errs domain.ValidationErrors
	if requireOwner {
		errs = append(errs, validateID("artist_id", in.ArtistID)...)
	}
	errs = append(errs, validateName("name", in.Name)...)
	year, yerrs := parseYear("year", in.Year)
	errs = append(errs, yerrs...)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &domain.Album{ArtistID: in.ArtistID, Name: in.Name, Year: year}, nil
}

type SongInput struct {
	AlbumID int64  `form:"album_id" json:"album_id" yaml:"-"`
	Name    string `form:"song_name" json:"name" yaml:"name"`
}

func (in *SongInput) song(requireOwner bool) (*domain.Song, error) {
	in.Name = strings.TrimSpace(in.Name)

	var errs domain.ValidationErrors
	if requireOwner {
		errs = append(errs, validateID("album_id", in.AlbumID)...)
	}
	errs = append(errs, validateName("name", in.Name)...)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &domain.Song{AlbumID: in.AlbumID, Name: in.Name}, nil
}
