// Package view selects the events visible for a calendar view: a week
// or month window around a reference date, narrowed by a free-text
// search. Filtering is pure and keeps the input order.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/seriparkdev/haru/internal/models"
	"github.com/seriparkdev/haru/internal/timeutil"
)

// Mode is the view granularity. The two variants are dispatched in one
// place (Filter) so the windowing rules stay centralized.
type Mode int

const (
	Week Mode = iota
	Month
)

func (m Mode) String() string {
	switch m {
	case Week:
		return "week"
	case Month:
		return "month"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the CLI flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	default:
		return 0, fmt.Errorf("unknown view %q (want week or month)", s)
	}
}

// Filter returns the events whose date falls in the ref window for the
// given mode, further narrowed by query as a case-insensitive substring
// over title, description and location. An empty query passes everything
// through. Events whose date does not parse are excluded. Input order is
// preserved.
func Filter(events []models.Event, query string, ref time.Time, mode Mode) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !inWindow(e, ref, mode) {
			continue
		}
		if query != "" && !matches(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func inWindow(e models.Event, ref time.Time, mode Mode) bool {
	date, ok := timeutil.ParseDate(e.Date)
	if !ok {
		return false
	}
	switch mode {
	case Week:
		start, end := timeutil.WeekWindow(ref)
		return !date.Before(start) && date.Before(end)
	case Month:
		return timeutil.SameMonth(date, ref)
	default:
		return false
	}
}

func matches(e models.Event, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Location), q)
}
