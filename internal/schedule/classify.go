// Package schedule holds the pure time rules shared by every view and by
// booking admission.
package schedule

import "time"

// IsUpcoming is the single classification predicate. A show starting
// exactly at now is upcoming.
func IsUpcoming(now, start time.Time) bool {
	return !start.Before(now)
}

// Partition splits items into past and upcoming relative to now, keeping
// the input order inside each half.
func Partition[T any](now time.Time, items []T, startOf func(T) time.Time) (past, upcoming []T) {
	past = make([]T, 0)
	upcoming = make([]T, 0)
	for _, item := range items {
		if IsUpcoming(now, startOf(item)) {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}
	return past, upcoming
}

// CountUpcoming is the count-only form of Partition.
func CountUpcoming(now time.Time, starts []time.Time) int {
	n := 0
	for _, s := range starts {
		if IsUpcoming(now, s) {
			n++
		}
	}
	return n
}
