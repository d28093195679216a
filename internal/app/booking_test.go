package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesargomez89/fyyur/internal/domain"
	"github.com/cesargomez89/fyyur/internal/events"
)

func TestCreateShow_RespectsAvailabilityWindows(t *testing.T) {
	rec := &events.Recorder{}
	a, _ := setupApp(t, WithPublisher(rec))
	ctx := context.Background()

	venue := createVenue(t, a, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, a, "Guns N Petals")
	addWindow(t, a, artist, 7*day, 14*day)

	inside := book(t, a, venue, artist, 10*day)
	assert.Equal(t, BookingCreated, inside.Status)
	assert.NotZero(t, inside.ShowID)
	assert.Nil(t, inside.Conflict)

	outside := book(t, a, venue, artist, 20*day)
	assert.Equal(t, BookingConflict, outside.Status)
	assert.Zero(t, outside.ShowID)
	require.NotNil(t, outside.Conflict)
	assert.Equal(t, artist, outside.Conflict.ArtistID)

	shows, err := a.Bookings.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, inside.ShowID, shows[0].ID)

	assert.Len(t, rec.OfType(events.ShowBooked), 1)
	rejected := rec.OfType(events.ShowRejected)
	require.Len(t, rejected, 1)
	assert.Equal(t, artist, rejected[0].EntityID)
}

func TestCreateShow_WindowBoundsAreInclusive(t *testing.T) {
	a, _ := setupApp(t)

	venue := createVenue(t, a, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, a, "Guns N Petals")
	addWindow(t, a, artist, 7*day, 14*day)

	assert.Equal(t, BookingCreated, book(t, a, venue, artist, 7*day).Status)
	assert.Equal(t, BookingCreated, book(t, a, venue, artist, 14*day).Status)
	assert.Equal(t, BookingConflict, book(t, a, venue, artist, 14*day+time.Second).Status)
}

func TestCreateShow_NoWindowsMeansAlwaysAvailable(t *testing.T) {
	a, _ := setupApp(t)

	venue := createVenue(t, a, "Park Square Live Music & Coffee", "San Francisco", "CA")
	artist := createArtist(t, a, "The Wild Sax Band")

	assert.Equal(t, BookingCreated, book(t, a, venue, artist, -30*day).Status)
	assert.Equal(t, BookingCreated, book(t, a, venue, artist, 365*day).Status)
}

func TestCreateShow_AllowsDoubleBooking(t *testing.T) {
	a, _ := setupApp(t)

	venue := createVenue(t, a, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, a, "Guns N Petals")

	first := book(t, a, venue, artist, day)
	second := book(t, a, venue, artist, day)
	assert.Equal(t, BookingCreated, first.Status)
	assert.Equal(t, BookingCreated, second.Status)
	assert.NotEqual(t, first.ShowID, second.ShowID)
}

func TestCreateShow_Errors(t *testing.T) {
	a, _ := setupApp(t)
	ctx := context.Background()

	venue := createVenue(t, a, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, a, "Guns N Petals")

	tests := []struct {
		name    string
		input   ShowInput
		wantErr error
		field   string
	}{
		{"missing venue", ShowInput{VenueID: venue + 100, ArtistID: artist, StartTime: at(day)}, domain.ErrNotFound, ""},
		{"missing artist", ShowInput{VenueID: venue, ArtistID: artist + 100, StartTime: at(day)}, domain.ErrNotFound, ""},
		{"malformed start", ShowInput{VenueID: venue, ArtistID: artist, StartTime: "next friday"}, domain.ErrValidation, "start_time"},
		{"empty start", ShowInput{VenueID: venue, ArtistID: artist}, domain.ErrValidation, "start_time"},
		{"zero venue", ShowInput{ArtistID: artist, StartTime: at(day)}, domain.ErrValidation, "venue_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := a.Bookings.CreateShow(ctx, tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.Status)

			if tt.field != "" {
				var verrs domain.ValidationErrors
				require.True(t, errors.As(err, &verrs))
				assert.Contains(t, verrs.ToMap(), tt.field)
			}
		})
	}

	shows, err := a.Bookings.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestCreateShow_ReadsTimesInConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("EDT", -4*60*60)
	a, _ := setupApp(t, WithLocation(loc))
	ctx := context.Background()

	venue := createVenue(t, a, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, a, "Guns N Petals")

	out, err := a.Bookings.CreateShow(ctx, ShowInput{VenueID: venue, ArtistID: artist, StartTime: "2026-07-01 20:00:00"})
	require.NoError(t, err)
	require.Equal(t, BookingCreated, out.Status)
	assert.Equal(t, "2026-07-02T00:00:00Z", out.Show.StartTime.Format("2006-01-02T15:04:05Z07:00"))
}

func TestRescheduleShow(t *testing.T) {
	rec := &events.Recorder{}
	a, _ := setupApp(t, WithPublisher(rec))
	ctx := context.Background()

	venue := createVenue(t, a, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, a, "Guns N Petals")
	addWindow(t, a, artist, 7*day, 14*day)
	show := book(t, a, venue, artist, 8*day)

	moved, err := a.Bookings.RescheduleShow(ctx, show.ShowID, at(9*day))
	require.NoError(t, err)
	assert.Equal(t, BookingCreated, moved.Status)
	assert.True(t, testNow.Add(9*day).Equal(moved.Show.StartTime))
	assert.Equal(t, venue, moved.Show.VenueID)
	assert.Len(t, rec.OfType(events.ShowRescheduled), 1)

	rejected, err := a.Bookings.RescheduleShow(ctx, show.ShowID, at(30*day))
	require.NoError(t, err)
	assert.Equal(t, BookingConflict, rejected.Status)

	shows, err := a.Bookings.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.True(t, testNow.Add(9*day).Equal(shows[0].StartTime))

	_, err = a.Bookings.RescheduleShow(ctx, show.ShowID+100, at(9*day))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = a.Bookings.RescheduleShow(ctx, show.ShowID, "tomorrow")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCancelShow(t *testing.T) {
	rec := &events.Recorder{}
	a, _ := setupApp(t, WithPublisher(rec))
	ctx := context.Background()

	venue := createVenue(t, a, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, a, "Guns N Petals")
	show := book(t, a, venue, artist, day)

	require.NoError(t, a.Bookings.CancelShow(ctx, show.ShowID))
	assert.ErrorIs(t, a.Bookings.CancelShow(ctx, show.ShowID), domain.ErrNotFound)

	cancelled := rec.OfType(events.ShowCancelled)
	require.Len(t, cancelled, 1)
	data, ok := cancelled[0].Data.(events.ShowData)
	require.True(t, ok)
	assert.Equal(t, venue, data.VenueID)
	assert.Equal(t, artist, data.ArtistID)
}

func TestPublishFailureDoesNotFailBooking(t *testing.T) {
	rec := &events.Recorder{Err: errors.New("broker down")}
	a, _ := setupApp(t, WithPublisher(rec))

	venue := createVenue(t, a, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, a, "Guns N Petals")

	out := book(t, a, venue, artist, day)
	assert.Equal(t, BookingCreated, out.Status)
	assert.Len(t, rec.Events(), 1)
}
