// Package server exposes the persistence service: a JSON HTTP API over
// the event store. Ids are assigned here on creation, so clients only
// ever see opaque identifiers.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/seriparkdev/haru/internal/models"
	"github.com/seriparkdev/haru/internal/store"
)

type Server struct {
	store store.Persistence
}

func New(p store.Persistence) *Server {
	return &Server{store: p}
}

// Handler returns the API routes:
//
//	GET    /api/events       list all events
//	POST   /api/events       create, id assigned by the server
//	PUT    /api/events/{id}  overwrite an existing event
//	DELETE /api/events/{id}  remove an event
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/events", s.handleEvents)
	mux.HandleFunc("/api/events/", s.handleEvent)
	return mux
}

type eventsResponse struct {
	Events []models.Event `json:"events"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		events, err := s.store.List(r.Context())
		if err != nil {
			log.Printf("list events failed: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to list events")
			return
		}
		writeJSON(w, http.StatusOK, eventsResponse{Events: events})

	case http.MethodPost:
		var draft models.EventDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeError(w, http.StatusBadRequest, "invalid event payload")
			return
		}
		event := models.Event{ID: uuid.NewString(), EventDraft: draft}
		if err := s.store.Put(event); err != nil {
			log.Printf("create event failed: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to store event")
			return
		}
		writeJSON(w, http.StatusCreated, event)

	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/events/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		if _, err := s.store.Get(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "event not found")
				return
			}
			log.Printf("read event %s failed: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to read event")
			return
		}
		var draft models.EventDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeError(w, http.StatusBadRequest, "invalid event payload")
			return
		}
		event := models.Event{ID: id, EventDraft: draft}
		if err := s.store.Put(event); err != nil {
			log.Printf("update event %s failed: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to store event")
			return
		}
		writeJSON(w, http.StatusOK, event)

	case http.MethodDelete:
		if err := s.store.Delete(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "event not found")
				return
			}
			log.Printf("delete event %s failed: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to delete event")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "PUT, DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
