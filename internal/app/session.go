// Package app coordinates one user session: the in-memory event
// collection fetched from the persistence service, the sequenced save
// protocol, and the notification scheduler bound to that collection.
package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/seriparkdev/haru/internal/client"
	"github.com/seriparkdev/haru/internal/models"
	"github.com/seriparkdev/haru/internal/notify"
	"github.com/seriparkdev/haru/internal/overlap"
	"github.com/seriparkdev/haru/internal/validate"
	"github.com/seriparkdev/haru/internal/view"
)

// Status labels surfaced to the user. Operations fail at most once; none
// are retried.
const (
	StatusFetchFailed   = "이벤트 로딩 실패"
	StatusSaveFailed    = "일정 저장 실패"
	StatusDeleteFailed  = "일정 삭제 실패"
	StatusMissingFields = "필수 정보를 모두 입력해주세요."
	StatusBadTimeRange  = "시간 설정을 확인해주세요."
)

var (
	ErrMissingFields = errors.New("required event fields are empty")
	ErrBadTimeRange  = errors.New("start time is not before end time")

	// ErrOverlap blocks a save until the caller confirms with force.
	ErrOverlap = errors.New("event overlaps existing events")
)

// StatusFunc receives user-facing status labels (the toast equivalent).
type StatusFunc func(msg string)

type Session struct {
	client *client.Client
	status StatusFunc
	sched  *notify.Scheduler
	events []models.Event
}

func NewSession(c *client.Client, status StatusFunc) *Session {
	if status == nil {
		status = func(string) {}
	}
	s := &Session{client: c, status: status}
	s.sched = notify.New(s.Events)
	return s
}

// Load replaces the cache with a fresh fetch. On failure the cache
// becomes empty rather than stale.
func (s *Session) Load(ctx context.Context) error {
	events, err := s.client.FetchAll(ctx)
	if err != nil {
		s.events = nil
		s.status(StatusFetchFailed)
		log.Printf("fetch events failed: %v", err)
		return err
	}
	s.events = events
	return nil
}

// Events returns the current collection. The slice is shared; callers
// must not mutate it.
func (s *Session) Events() []models.Event {
	return s.events
}

// Scheduler returns the session's notification scheduler.
func (s *Session) Scheduler() *notify.Scheduler {
	return s.sched
}

// Filtered applies the view filter to the cached collection.
func (s *Session) Filtered(query string, ref time.Time, mode view.Mode) []models.Event {
	return view.Filter(s.events, query, ref, mode)
}

// Save runs the sequenced save protocol: required fields, start/end
// validation, then overlap detection. A non-empty conflict set blocks
// the save with ErrOverlap unless force is set; the conflicting events
// are returned so the caller can show them. editingID is empty for a
// create and the stored id for an in-place update.
func (s *Session) Save(ctx context.Context, draft models.EventDraft, editingID string, force bool) ([]models.Event, error) {
	if draft.Title == "" || draft.Date == "" || draft.StartTime == "" || draft.EndTime == "" {
		s.status(StatusMissingFields)
		return nil, ErrMissingFields
	}
	if validate.TimeRange(draft.StartTime, draft.EndTime).HasError() {
		s.status(StatusBadTimeRange)
		return nil, ErrBadTimeRange
	}

	candidate := models.Event{ID: editingID, EventDraft: draft}
	if conflicts := overlap.FindOverlaps(candidate, s.events); len(conflicts) > 0 && !force {
		return conflicts, ErrOverlap
	}

	var err error
	if editingID == "" {
		_, err = s.client.Create(ctx, draft)
	} else {
		_, err = s.client.Update(ctx, editingID, draft)
	}
	if err != nil {
		s.status(StatusSaveFailed)
		log.Printf("save event failed: %v", err)
		return nil, err
	}
	return nil, s.Load(ctx)
}

// Delete removes the event and refreshes the cache.
func (s *Session) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, id); err != nil {
		s.status(StatusDeleteFailed)
		log.Printf("delete event failed: %v", err)
		return err
	}
	return s.Load(ctx)
}
