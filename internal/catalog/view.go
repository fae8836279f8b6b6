package catalog

import (
	"github.com/Elizabethomito/eventboard/internal/models"
)

// Snapshot derives the renderer's view from the current state. The clock
// is read once so every event in the pass is classified against the same
// instant. While nobody is logged in the event list is empty.
func (c *Catalog) Snapshot() models.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	v := models.View{
		Version:       c.version,
		Now:           now,
		LoggedIn:      c.session != nil,
		CanAddEvent:   CanAddEvent(c.session),
		Filter:        c.filter,
		Categories:    append([]models.Category(nil), models.Categories...),
		TimeFilters:   append([]models.TimeFilter(nil), models.TimeFilters...),
		Events:        []models.EventView{},
		FiltersActive: c.filter.Active(),
	}
	if c.session == nil {
		return v
	}
	u := *c.session
	v.User = &u

	for _, e := range FilterEvents(c.cloneEvents(), c.filter, now) {
		v.Events = append(v.Events, describe(&u, e, StatusOf(e, now), c.checkedIn[e.ID]))
	}
	v.NoResults = len(v.Events) == 0 && v.FiltersActive
	return v
}

// EventDetail returns the detail view of one event for the current session.
func (c *Catalog) EventDetail(id int) (models.EventView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return models.EventView{}, ErrNotFound
	}
	now := c.clock()
	e := cloneEvent(c.events[i])
	return describe(c.session, e, StatusOf(e, now), c.checkedIn[id]), nil
}

// Reminded returns the events with the reminder flag set, in catalog order.
func (c *Catalog) Reminded() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.Event
	for _, e := range c.events {
		if e.Reminded {
			out = append(out, cloneEvent(e))
		}
	}
	return out
}
