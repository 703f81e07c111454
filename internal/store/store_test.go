package store

import (
	"context"
	"errors"
	"testing"

	"github.com/seriparkdev/haru/internal/models"
)

func makeEvent(id, date, start string) models.Event {
	return models.Event{
		ID: id,
		EventDraft: models.EventDraft{
			Title:            "팀 회의",
			Date:             date,
			StartTime:        start,
			EndTime:          "18:00",
			Repeat:           models.Repeat{Type: models.RepeatNone},
			NotificationTime: 10,
		},
	}
}

func TestPutGet(t *testing.T) {
	p := Open(t.TempDir())

	in := makeEvent("abc", "2024-10-15", "09:00")
	if err := p.Put(in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := p.Get("abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != in {
		t.Errorf("Get = %+v, want %+v", got, in)
	}
}

func TestGetMissing(t *testing.T) {
	p := Open(t.TempDir())
	if _, err := p.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestPutEmptyID(t *testing.T) {
	p := Open(t.TempDir())
	if err := p.Put(models.Event{}); err == nil {
		t.Error("Put with empty id should fail")
	}
}

func TestListOrder(t *testing.T) {
	p := Open(t.TempDir())
	events := []models.Event{
		makeEvent("z", "2024-10-15", "11:00"),
		makeEvent("a", "2024-10-15", "09:00"),
		makeEvent("m", "2024-09-01", "20:00"),
	}
	for _, e := range events {
		if err := p.Put(e); err != nil {
			t.Fatalf("Put(%s): %v", e.ID, err)
		}
	}

	got, err := p.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	wantOrder := []string{"m", "a", "z"}
	if len(got) != len(wantOrder) {
		t.Fatalf("List returned %d events, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("List[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestDelete(t *testing.T) {
	p := Open(t.TempDir())
	if err := p.Put(makeEvent("abc", "2024-10-15", "09:00")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := p.Delete("abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := p.Get("abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := p.Delete("abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	p := Open(t.TempDir())
	if err := p.Put(makeEvent("abc", "2024-10-15", "09:00")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	updated := makeEvent("abc", "2024-10-16", "10:00")
	if err := p.Put(updated); err != nil {
		t.Fatalf("Put update: %v", err)
	}
	got, err := p.Get("abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Date != "2024-10-16" || got.StartTime != "10:00" {
		t.Errorf("overwrite lost: %+v", got)
	}
}
