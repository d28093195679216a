package domain

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

func TestNewGenres(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		expected Genres
	}{
		{"empty", nil, Genres{}},
		{"keeps order", []string{"Rock", "Jazz"}, Genres{"Rock", "Jazz"}},
		{"drops repeats", []string{"Jazz", "Rock", "Jazz"}, Genres{"Jazz", "Rock"}},
		{"trims and drops blanks", []string{" Blues ", "", "  "}, Genres{"Blues"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGenres(tt.in...)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NewGenres(%v) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestGenres_ValueAndScan(t *testing.T) {
	g := NewGenres("Jazz", "Rock")
	v, err := g.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != "Jazz,Rock" {
		t.Errorf("Value() = %v, want %q", v, "Jazz,Rock")
	}

	var scanned Genres
	if err := scanned.Scan([]byte("Jazz,Rock")); err != nil {
		t.Fatalf("Scan([]byte) error: %v", err)
	}
	if !reflect.DeepEqual(scanned, g) {
		t.Errorf("Scan() = %v, want %v", scanned, g)
	}

	if err := scanned.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if len(scanned) != 0 {
		t.Errorf("Scan(nil) = %v, want empty", scanned)
	}

	if err := scanned.Scan(42); err == nil {
		t.Error("Scan(int) expected error")
	}
}

func TestParseGenres(t *testing.T) {
	if got := ParseGenres(""); len(got) != 0 {
		t.Errorf("ParseGenres(\"\") = %v, want empty", got)
	}
	got := ParseGenres("Pop, Electronic,,Pop")
	want := Genres{"Pop", "Electronic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseGenres() = %v, want %v", got, want)
	}
}

func TestAvailability_Contains(t *testing.T) {
	start := time.Date(2030, 1, 8, 0, 0, 0, 0, time.UTC)
	end := start.Add(7 * 24 * time.Hour)
	w := Availability{StartTime: start, EndTime: end}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before", start.Add(-time.Second), false},
		{"at start", start, true},
		{"inside", start.Add(48 * time.Hour), true},
		{"at end", end, true},
		{"after", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestErrors_Classification(t *testing.T) {
	nf := fmt.Errorf("load: %w", NotFound("venue", 7))
	if !errors.Is(nf, ErrNotFound) {
		t.Error("expected NotFoundError to match ErrNotFound")
	}
	var target *NotFoundError
	if !errors.As(nf, &target) || target.Entity != "venue" || target.ID != 7 {
		t.Errorf("errors.As(NotFoundError) = %+v", target)
	}

	verrs := ValidationErrors{{Field: "name", Message: "is required"}, {Field: "name", Message: "too long"}}
	if !errors.Is(verrs, ErrValidation) {
		t.Error("expected ValidationErrors to match ErrValidation")
	}
	if verrs.Error() != "name: is required; name: too long" {
		t.Errorf("Error() = %q", verrs.Error())
	}
	if verrs.ToMap()["name"] != "is required" {
		t.Errorf("ToMap() = %v", verrs.ToMap())
	}
	if (ValidationErrors{}).Err() != nil {
		t.Error("empty ValidationErrors.Err() should be nil")
	}

	pe := &PersistenceError{Op: "create venue", Err: errors.New("disk full")}
	if !errors.Is(pe, ErrPersistence) {
		t.Error("expected PersistenceError to match ErrPersistence")
	}
	if errors.Unwrap(pe).Error() != "disk full" {
		t.Errorf("Unwrap() = %v", errors.Unwrap(pe))
	}

	c := &AvailabilityConflict{ArtistID: 3}
	if !errors.Is(c, ErrConflict) {
		t.Error("expected AvailabilityConflict to match ErrConflict")
	}
}
