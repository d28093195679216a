package schedule

import (
	"time"

	"github.com/cesargomez89/fyyur/internal/domain"
)

type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonAvailabilityConflict Reason = "availability_conflict"
)

// Admission is the verdict for a candidate show time.
type Admission struct {
	Admissible bool
	Reason     Reason
	// Windows are the artist windows the candidate was checked against.
	Windows []domain.Availability
}

// Conflict builds the domain outcome for a rejected admission.
func (a Admission) Conflict(artistID int64, candidate time.Time) *domain.AvailabilityConflict {
	if a.Admissible {
		return nil
	}
	return &domain.AvailabilityConflict{ArtistID: artistID, StartTime: candidate, Windows: a.Windows}
}

// CheckAvailability decides whether candidate is bookable for artistID.
// Windows of other artists are ignored. An artist without any window is
// always available; otherwise candidate must fall inside at least one
// window, bounds included.
func CheckAvailability(artistID int64, candidate time.Time, windows []domain.Availability) Admission {
	own := make([]domain.Availability, 0, len(windows))
	for _, w := range windows {
		if w.ArtistID == artistID {
			own = append(own, w)
		}
	}
	if len(own) == 0 {
		return Admission{Admissible: true, Windows: own}
	}
	for _, w := range own {
		if w.Contains(candidate) {
			return Admission{Admissible: true, Windows: own}
		}
	}
	return Admission{Admissible: false, Reason: ReasonAvailabilityConflict, Windows: own}
}
