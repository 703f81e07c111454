// Package notify owns the session-scoped notification state: the ordered
// list of alerts and the set of event ids that already fired. State only
// changes through the two transitions, Tick and Dismiss.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/seriparkdev/haru/internal/models"
	"github.com/seriparkdev/haru/internal/timeutil"
)

// EventsFunc supplies the current event collection on each tick, so the
// session can swap the slice between checks.
type EventsFunc func() []models.Event

// Scheduler polls the event collection on a fixed cadence and records an
// alert the first time an event crosses its reminder lead time. State is
// session-scoped and discarded with the scheduler; it is not persisted.
//
// Transitions are not synchronized: Tick, Dismiss and the snapshot
// accessors must be called from the goroutine running Run (or, in tests,
// from a single goroutine).
type Scheduler struct {
	events        EventsFunc
	now           func() time.Time
	checkInterval time.Duration
	notifyCh      chan struct{}

	// OnNotify, when set, receives each newly created notification.
	OnNotify func(models.Notification)

	notifications []models.Notification
	notified      map[string]struct{}
}

func New(events EventsFunc) *Scheduler {
	return &Scheduler{
		events:        events,
		now:           time.Now,
		checkInterval: 1 * time.Second,
		notifyCh:      make(chan struct{}, 1),
		notifications: make([]models.Notification, 0),
		notified:      make(map[string]struct{}),
	}
}

// Notify triggers an immediate check. Non-blocking if a check is already pending.
func (s *Scheduler) Notify() {
	select {
	case s.notifyCh <- struct{}{}:
	default:
	}
}

// Run ticks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	log.Println("notification scheduler started")
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("notification scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(s.now())
		case <-s.notifyCh:
			s.Tick(s.now())
		}
	}
}

// Tick applies one poll at the given instant and returns the
// notifications created by it. Repeated ticks with nothing newly
// eligible change no state.
func (s *Scheduler) Tick(now time.Time) []models.Notification {
	upcoming := s.Upcoming(now)
	created := make([]models.Notification, 0, len(upcoming))
	for _, e := range upcoming {
		n := models.Notification{ID: e.ID, Message: Message(e)}
		s.notifications = append(s.notifications, n)
		s.notified[e.ID] = struct{}{}
		created = append(created, n)
		if s.OnNotify != nil {
			s.OnNotify(n)
		}
	}
	return created
}

// Upcoming returns the events whose reminder window contains now and
// that have not fired yet, in collection order. The window is
// [start - lead, start): an event that reached its start without ever
// firing is no longer eligible.
func (s *Scheduler) Upcoming(now time.Time) []models.Event {
	upcoming := make([]models.Event, 0)
	for _, e := range s.events() {
		if _, done := s.notified[e.ID]; done {
			continue
		}
		start, ok := timeutil.ParseDateTime(e.Date, e.StartTime)
		if !ok {
			continue
		}
		lead := time.Duration(e.NotificationTime) * time.Minute
		if !now.Before(start.Add(-lead)) && now.Before(start) {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming
}

// Dismiss removes the notification at position i, keeping the relative
// order of the rest. The notified set is untouched, so a dismissed event
// never fires again. Out-of-range positions are ignored.
func (s *Scheduler) Dismiss(i int) {
	if i < 0 || i >= len(s.notifications) {
		return
	}
	s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
}

// Notifications returns a snapshot of the current alert list.
func (s *Scheduler) Notifications() []models.Notification {
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// NotifiedIDs returns a snapshot of the event ids that already fired.
func (s *Scheduler) NotifiedIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(s.notified))
	for id := range s.notified {
		out[id] = struct{}{}
	}
	return out
}

// Message builds the alert text for an event.
func Message(e models.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", e.NotificationTime, e.Title)
}
