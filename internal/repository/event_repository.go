package repository

import (
	"slices"
	"time"

	"github.com/iliyamo/monastery360/internal/model"
)

// Seed offsets, in days from the startup instant.
const (
	losoongOffsetDays       = 14
	buddhaPurnimaOffsetDays = 30
)

// EventRepo serves the fixed list of upcoming events.
type EventRepo struct {
	items []model.Event
}

// NewEventRepo constructs an EventRepo whose event dates are computed
// relative to now, the process start instant.  Passing the instant in keeps
// the dates deterministic in tests; main passes time.Now().
func NewEventRepo(now time.Time) *EventRepo {
	today := model.DateOf(now)
	return &EventRepo{items: []model.Event{
		{
			ID:          1,
			Name:        "Losoong Festival",
			Monastery:   "Rumtek Monastery",
			Date:        today.AddDays(losoongOffsetDays),
			Description: "Harvest festival with Cham dance",
		},
		{
			ID:          2,
			Name:        "Buddha Purnima",
			Monastery:   "Enchey Monastery",
			Date:        today.AddDays(buddhaPurnimaOffsetDays),
			Description: "Celebration of Buddha's birth",
		},
	}}
}

// List returns every event in insertion order as a copy.
func (r *EventRepo) List() []model.Event {
	return slices.Clone(r.items)
}

// Len reports how many events the repository holds.
func (r *EventRepo) Len() int {
	return len(r.items)
}
