package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seriparkdev/haru/internal/models"
	"github.com/seriparkdev/haru/internal/store"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	return New(store.Open(t.TempDir())).Handler()
}

func draftJSON(t *testing.T, title, date string) *bytes.Buffer {
	t.Helper()
	draft := models.EventDraft{
		Title:            title,
		Date:             date,
		StartTime:        "09:00",
		EndTime:          "10:00",
		Description:      "기존 팀 미팅",
		Location:         "회의실 B",
		Category:         "업무",
		Repeat:           models.Repeat{Type: models.RepeatNone},
		NotificationTime: 10,
	}
	b, err := json.Marshal(draft)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewBuffer(b)
}

func TestCreateAndList(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/events", draftJSON(t, "기존 회의", "2024-10-15")))
	if w.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201", w.Code)
	}

	var created models.Event
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Error("server must assign an id")
	}
	if created.Title != "기존 회의" {
		t.Errorf("created title = %q", created.Title)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", w.Code)
	}
	var listed struct {
		Events []models.Event `json:"events"`
	}
	if err := json.NewDecoder(w.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Events) != 1 || listed.Events[0].ID != created.ID {
		t.Errorf("list = %+v, want the created event", listed.Events)
	}
}

func TestUpdate(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/events", draftJSON(t, "기존 회의", "2024-10-15")))
	var created models.Event
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/events/"+created.ID, draftJSON(t, "수정된 이벤트", "2024-10-16")))
	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", w.Code)
	}
	var updated models.Event
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.ID != created.ID || updated.Title != "수정된 이벤트" {
		t.Errorf("updated = %+v", updated)
	}
}

func TestUpdateMissing(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/events/nope", draftJSON(t, "수정된 이벤트", "2024-10-16")))
	if w.Code != http.StatusNotFound {
		t.Errorf("PUT missing status = %d, want 404", w.Code)
	}
}

func TestDelete(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/events", draftJSON(t, "기존 회의", "2024-10-15")))
	var created models.Event
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/events/"+created.ID, nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/events/"+created.ID, nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", w.Code)
	}
}

func TestBadPayload(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString("{not json")))
	if w.Code != http.StatusBadRequest {
		t.Errorf("POST bad payload status = %d, want 400", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/events", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE on collection status = %d, want 405", w.Code)
	}
}
