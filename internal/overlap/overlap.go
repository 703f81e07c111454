// Package overlap decides whether events collide in time. It is invoked
// synchronously before every save; a non-empty result blocks the save
// until the user explicitly confirms.
package overlap

import (
	"github.com/seriparkdev/haru/internal/models"
	"github.com/seriparkdev/haru/internal/timeutil"
)

// ToRange derives the [start, end) interval of an event. If either bound
// fails to parse, the range is invalid as a whole.
func ToRange(e models.Event) timeutil.TimeRange {
	start, ok := timeutil.ParseDateTime(e.Date, e.StartTime)
	if !ok {
		return timeutil.TimeRange{}
	}
	end, ok := timeutil.ParseDateTime(e.Date, e.EndTime)
	if !ok {
		return timeutil.TimeRange{}
	}
	return timeutil.TimeRange{Start: start, End: end, Valid: true}
}

// Overlaps reports whether two events intersect as half-open intervals:
// touching endpoints do not count. Events with an invalid range overlap
// nothing.
func Overlaps(a, b models.Event) bool {
	ra, rb := ToRange(a), ToRange(b)
	if !ra.Valid || !rb.Valid {
		return false
	}
	return ra.Start.Before(rb.End) && rb.Start.Before(ra.End)
}

// FindOverlaps returns every event in pool that overlaps the candidate,
// in pool order. Entries sharing the candidate's id are skipped so an
// event being edited never conflicts with itself.
func FindOverlaps(candidate models.Event, pool []models.Event) []models.Event {
	found := make([]models.Event, 0)
	for _, e := range pool {
		if e.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, e) {
			found = append(found, e)
		}
	}
	return found
}
