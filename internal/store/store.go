// Package store persists events as one JSON document per event id,
// backed by diskv. It is the storage side of the persistence service and
// is never touched by the calendar core directly.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"github.com/seriparkdev/haru/internal/models"
)

// ErrNotFound is returned when no event exists under the given id.
var ErrNotFound = errors.New("event not found")

// Persistence defines the persistence contract for events.
type Persistence interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(id string) (models.Event, error)
	Put(e models.Event) error
	Delete(id string) error
}

// Open creates a Persistence rooted at dir.
func Open(dir string) Persistence {
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

type persistence struct {
	d *diskv.Diskv
}

// List returns all stored events ordered by (date, start time, id) so
// repeated fetches are deterministic.
func (p *persistence) List(ctx context.Context) ([]models.Event, error) {
	all := make([]models.Event, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.Get(key)
		if err != nil {
			return nil, fmt.Errorf("read event %s: %w", key, err)
		}
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date < all[j].Date
		}
		if all[i].StartTime != all[j].StartTime {
			return all[i].StartTime < all[j].StartTime
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (p *persistence) Get(id string) (models.Event, error) {
	if !p.d.Has(id) {
		return models.Event{}, ErrNotFound
	}
	val, err := p.d.Read(id)
	if err != nil {
		return models.Event{}, err
	}
	var e models.Event
	if err := json.Unmarshal(val, &e); err != nil {
		return models.Event{}, err
	}
	e.ID = id
	return e, nil
}

func (p *persistence) Put(e models.Event) error {
	if e.ID == "" {
		return errors.New("event id is empty")
	}
	val, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(e.ID, val)
}

func (p *persistence) Delete(id string) error {
	if !p.d.Has(id) {
		return ErrNotFound
	}
	return p.d.Erase(id)
}
