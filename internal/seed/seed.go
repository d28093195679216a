// Package seed loads venues, artists and shows from YAML fixture files
// through the application services.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cesargomez89/fyyur/internal/app"
	"github.com/cesargomez89/fyyur/internal/logger"
)

type Fixtures struct {
	Venues  []app.VenueInput `yaml:"venues"`
	Artists []Artist         `yaml:"artists"`
	Shows   []Show           `yaml:"shows"`
}

type Artist struct {
	app.ArtistInput `yaml:",inline"`
	Availability    []app.AvailabilityInput `yaml:"availability"`
	Albums          []Album                 `yaml:"albums"`
}

type Album struct {
	Name  string   `yaml:"name"`
	Year  string   `yaml:"year"`
	Songs []string `yaml:"songs"`
}

// Show books Artist at Venue. Both are referenced by name.
type Show struct {
	Venue     string `yaml:"venue"`
	Artist    string `yaml:"artist"`
	StartTime string `yaml:"start_time"`
}

// Rejection is a fixture show that failed the availability check.
type Rejection struct {
	Venue     string
	Artist    string
	StartTime string
}

type Report struct {
	Venues       int
	Artists      int
	Availability int
	Albums       int
	Songs        int
	ShowsBooked  int
	Rejected     []Rejection
}

// Parse decodes fixtures. Unknown keys are rejected.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Apply creates every fixture in order: venues, artists with their
// availability and discography, then shows. A show outside the artist's
// availability is reported, not treated as an error.
func Apply(ctx context.Context, a *app.App, f *Fixtures, log *logger.Logger) (*Report, error) {
	log = log.WithComponent("seed")
	report := &Report{}

	venues := make(map[string]int64, len(f.Venues))
	for i, in := range f.Venues {
		key := strings.TrimSpace(in.Name)
		if _, dup := venues[key]; dup {
			return report, fmt.Errorf("venue %d: duplicate name %q", i, key)
		}
		v, err := a.Venues.Create(ctx, in)
		if err != nil {
			return report, fmt.Errorf("venue %q: %w", key, err)
		}
		venues[key] = v.ID
		report.Venues++
	}

	artists := make(map[string]int64, len(f.Artists))
	for i, fa := range f.Artists {
		key := strings.TrimSpace(fa.Name)
		if _, dup := artists[key]; dup {
			return report, fmt.Errorf("artist %d: duplicate name %q", i, key)
		}
		ar, err := a.Artists.Create(ctx, fa.ArtistInput)
		if err != nil {
			return report, fmt.Errorf("artist %q: %w", key, err)
		}
		artists[key] = ar.ID
		report.Artists++

		for _, w := range fa.Availability {
			w.ArtistID = ar.ID
			if _, err := a.Artists.AddAvailability(ctx, w); err != nil {
				return report, fmt.Errorf("artist %q availability: %w", key, err)
			}
			report.Availability++
		}

		for _, fal := range fa.Albums {
			album, err := a.Artists.AddAlbum(ctx, app.AlbumInput{ArtistID: ar.ID, Name: fal.Name, Year: fal.Year})
			if err != nil {
				return report, fmt.Errorf("artist %q album %q: %w", key, fal.Name, err)
			}
			report.Albums++
			for _, song := range fal.Songs {
				if _, err := a.Artists.AddSong(ctx, app.SongInput{AlbumID: album.ID, Name: song}); err != nil {
					return report, fmt.Errorf("album %q song %q: %w", fal.Name, song, err)
				}
				report.Songs++
			}
		}
	}

	for i, s := range f.Shows {
		venueID, ok := venues[strings.TrimSpace(s.Venue)]
		if !ok {
			return report, fmt.Errorf("show %d: unknown venue %q", i, s.Venue)
		}
		artistID, ok := artists[strings.TrimSpace(s.Artist)]
		if !ok {
			return report, fmt.Errorf("show %d: unknown artist %q", i, s.Artist)
		}
		outcome, err := a.Bookings.CreateShow(ctx, app.ShowInput{VenueID: venueID, ArtistID: artistID, StartTime: s.StartTime})
		if err != nil {
			return report, fmt.Errorf("show %d: %w", i, err)
		}
		if outcome.Status == app.BookingConflict {
			log.Warn("Fixture show rejected", "venue", s.Venue, "artist", s.Artist, "start_time", s.StartTime)
			report.Rejected = append(report.Rejected, Rejection(s))
			continue
		}
		report.ShowsBooked++
	}

	log.Info("Fixtures applied",
		"venues", report.Venues,
		"artists", report.Artists,
		"shows", report.ShowsBooked,
		"rejected", len(report.Rejected),
	)
	return report, nil
}
