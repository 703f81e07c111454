// Package export serializes events to an iCalendar feed. The stored
// repeat descriptor becomes an RRULE property; occurrences are never
// materialized here.
package export

import (
	"fmt"
	"io"
	"log"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/seriparkdev/haru/internal/models"
	"github.com/seriparkdev/haru/internal/overlap"
	"github.com/seriparkdev/haru/internal/timeutil"
)

const prodID = "-//haru//calendar//KO"

// Write renders events as a VCALENDAR. Events whose date or times do not
// parse are skipped with a log line, matching the lax-input policy used
// everywhere else.
func Write(w io.Writer, events []models.Event) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	now := time.Now()
	for _, e := range events {
		r := overlap.ToRange(e)
		if !r.Valid {
			log.Printf("skipping event %s: unparseable date/time", e.ID)
			continue
		}

		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(r.Start)
		ev.SetEndAt(r.End)
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Repeat.IsRepeating() {
			rule, err := Rule(e.Repeat)
			if err != nil {
				log.Printf("skipping RRULE for event %s: %v", e.ID, err)
			} else {
				ev.AddRrule(rule)
			}
		}
	}

	return cal.SerializeTo(w)
}

// Rule maps a repeat descriptor to its RRULE value.
func Rule(r models.Repeat) (string, error) {
	opt := rrule.ROption{Interval: r.Interval}
	switch r.Type {
	case models.RepeatDaily:
		opt.Freq = rrule.DAILY
	case models.RepeatWeekly:
		opt.Freq = rrule.WEEKLY
	case models.RepeatMonthly:
		opt.Freq = rrule.MONTHLY
	case models.RepeatYearly:
		opt.Freq = rrule.YEARLY
	default:
		return "", fmt.Errorf("repeat type %q has no RRULE mapping", r.Type)
	}
	if r.EndDate != "" {
		until, ok := timeutil.ParseDate(r.EndDate)
		if !ok {
			return "", fmt.Errorf("repeat end date %q does not parse", r.EndDate)
		}
		opt.Until = until
	}
	// Validate through the rrule library before emitting.
	if _, err := rrule.NewRRule(opt); err != nil {
		return "", err
	}
	return opt.RRuleString(), nil
}
