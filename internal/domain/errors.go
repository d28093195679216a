package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("availability conflict")
	ErrPersistence = errors.New("persistence failure")
)

// NotFoundError reports that a referenced id does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound is shorthand for &NotFoundError{Entity: entity, ID: id}.
func NotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one input.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func (errs ValidationErrors) Is(target error) bool { return target == ErrValidation }

// ToMap keys messages by field; the first message for a field wins.
func (errs ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// Err returns nil for an empty collection so callers can write
// `return errs.Err()`.
func (errs ValidationErrors) Err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// AvailabilityConflict is the expected outcome of booking an artist outside
// every declared availability window.
type AvailabilityConflict struct {
	ArtistID  int64          `json:"artist_id"`
	StartTime time.Time      `json:"start_time"`
	Windows   []Availability `json:"windows"`
}

func (c *AvailabilityConflict) Error() string {
	return fmt.Sprintf("artist %d is not available at %s", c.ArtistID, c.StartTime.Format(time.RFC3339))
}

func (c *AvailabilityConflict) Is(target error) bool { return target == ErrConflict }

// PersistenceError wraps a failure of the underlying store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
