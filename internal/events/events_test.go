package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	at := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	e := New(ShowBooked, 7, ShowData{ShowID: 7, VenueID: 1, ArtistID: 2, StartTime: at})

	assert.NotEqual(t, e.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, ShowBooked, e.Type)
	assert.Equal(t, int64(7), e.EntityID)
	assert.Equal(t, time.UTC, e.OccurredAt.Location())

	other := New(ShowBooked, 7, nil)
	assert.NotEqual(t, e.ID, other.ID)
}

func TestPublishing(t *testing.T) {
	at := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	e := New(ShowRejected, 2, ShowData{VenueID: 1, ArtistID: 2, StartTime: at})

	msg, err := publishing(e)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, e.ID.String(), msg.MessageId)
	assert.Equal(t, "show.rejected", msg.Type)

	var decoded struct {
		Type     string `json:"type"`
		EntityID int64  `json:"entity_id"`
		Data     struct {
			VenueID   int64     `json:"venue_id"`
			ArtistID  int64     `json:"artist_id"`
			StartTime time.Time `json:"start_time"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "show.rejected", decoded.Type)
	assert.Equal(t, int64(2), decoded.EntityID)
	assert.Equal(t, int64(1), decoded.Data.VenueID)
	assert.True(t, decoded.Data.StartTime.Equal(at))
}

func TestPublishing_UnencodableData(t *testing.T) {
	_, err := publishing(New(ShowBooked, 1, make(chan int)))
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	ctx := context.Background()

	require.NoError(t, r.Publish(ctx, New(ShowBooked, 1, nil)))
	require.NoError(t, r.Publish(ctx, New(VenueDeleted, 2, nil)))

	assert.Len(t, r.Events(), 2)
	assert.Len(t, r.OfType(VenueDeleted), 1)
	assert.Empty(t, r.OfType(ArtistDeleted))

	r.Err = errors.New("broker down")
	assert.Error(t, r.Publish(ctx, New(ShowBooked, 3, nil)))
	assert.Len(t, r.Events(), 3)
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), New(ShowBooked, 1, nil)))
	assert.NoError(t, p.Close())
}
