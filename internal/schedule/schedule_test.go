package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesargomez89/fyyur/internal/domain"
)

var now = time.Date(2030, 6, 1, 20, 0, 0, 0, time.UTC)

func TestIsUpcoming_Boundary(t *testing.T) {
	assert.True(t, IsUpcoming(now, now), "show starting exactly now is upcoming")
	assert.True(t, IsUpcoming(now, now.Add(time.Nanosecond)))
	assert.False(t, IsUpcoming(now, now.Add(-time.Nanosecond)))
}

func TestPartition(t *testing.T) {
	shows := []domain.Show{
		{ID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ID: 2, StartTime: now},
		{ID: 3, StartTime: now.Add(24 * time.Hour)},
		{ID: 4, StartTime: now.Add(-time.Minute)},
	}

	past, upcoming := Partition(now, shows, func(s domain.Show) time.Time { return s.StartTime })

	require.Len(t, past, 2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, int64(1), past[0].ID)
	assert.Equal(t, int64(4), past[1].ID)
	assert.Equal(t, int64(2), upcoming[0].ID)
	assert.Equal(t, int64(3), upcoming[1].ID)
}

func TestPartition_EmptyInputGivesEmptySlices(t *testing.T) {
	past, upcoming := Partition(now, []domain.Show(nil), func(s domain.Show) time.Time { return s.StartTime })
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestCountUpcoming_AgreesWithPartition(t *testing.T) {
	var starts []time.Time
	var shows []domain.Show
	for i := -5; i <= 5; i++ {
		ts := now.Add(time.Duration(i) * time.Hour)
		starts = append(starts, ts)
		shows = append(shows, domain.Show{StartTime: ts})
	}

	_, upcoming := Partition(now, shows, func(s domain.Show) time.Time { return s.StartTime })
	assert.Equal(t, len(upcoming), CountUpcoming(now, starts))
	assert.Equal(t, 6, CountUpcoming(now, starts))
}

func TestCheckAvailability(t *testing.T) {
	day := 24 * time.Hour
	window := domain.Availability{ID: 1, ArtistID: 10, StartTime: now.Add(7 * day), EndTime: now.Add(14 * day)}

	tests := []struct {
		name      string
		windows   []domain.Availability
		candidate time.Time
		want      bool
	}{
		{"no windows is always admissible", nil, now.Add(30 * day), true},
		{"inside window", []domain.Availability{window}, now.Add(10 * day), true},
		{"at window start", []domain.Availability{window}, window.StartTime, true},
		{"at window end", []domain.Availability{window}, window.EndTime, true},
		{"after window", []domain.Availability{window}, now.Add(30 * day), false},
		{"before window", []domain.Availability{window}, now.Add(day), false},
		{
			"any of several windows",
			[]domain.Availability{window, {ID: 2, ArtistID: 10, StartTime: now.Add(29 * day), EndTime: now.Add(31 * day)}},
			now.Add(30 * day),
			true,
		},
		{
			"other artists' windows are ignored",
			[]domain.Availability{{ID: 3, ArtistID: 99, StartTime: now, EndTime: now.Add(day)}},
			now.Add(30 * day),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAvailability(10, tt.candidate, tt.windows)
			assert.Equal(t, tt.want, got.Admissible)
			if tt.want {
				assert.Equal(t, ReasonNone, got.Reason)
				assert.Nil(t, got.Conflict(10, tt.candidate))
			} else {
				assert.Equal(t, ReasonAvailabilityConflict, got.Reason)
				c := got.Conflict(10, tt.candidate)
				require.NotNil(t, c)
				assert.Equal(t, int64(10), c.ArtistID)
				assert.True(t, c.StartTime.Equal(tt.candidate))
			}
		})
	}
}
