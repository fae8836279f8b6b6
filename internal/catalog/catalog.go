// Package catalog holds the event board state: the event and user lists,
// the single session slot, per-event check-ins and the filter selection.
//
// Every operation runs to completion under one mutex, so the catalog
// behaves as a single writer even when the HTTP layer calls it from many
// goroutines. Subscribers are told about each successful mutation after
// the lock is released.
package catalog

import (
	"sync"
	"time"

	"github.com/Elizabethomito/eventboard/internal/models"
)

// DefaultImage is attached to events created through AddEvent.
const DefaultImage = "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?w=800"

// Change kinds published to subscribers.
const (
	ChangeSession  = "session"
	ChangeFilter   = "filter"
	ChangeReminder = "reminder"
	ChangeCheckIn  = "checkin"
	ChangeRating   = "rating"
	ChangeEvent    = "event"
	ChangeReset    = "reset"
)

// Change describes one committed mutation.
type Change struct {
	Version uint64 `json:"version"`
	Kind    string `json:"kind"`
	EventID int    `json:"event_id,omitempty"`
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock replaces time.Now as the source of "now".
func WithClock(clock func() time.Time) Option {
	return func(c *Catalog) { c.clock = clock }
}

// WithLocation sets the zone used to read form timestamps that carry no
// offset, such as browser datetime-local values.
func WithLocation(loc *time.Location) Option {
	return func(c *Catalog) { c.loc = loc }
}

// Catalog is the explicit state container passed to every handler.
type Catalog struct {
	mu          sync.Mutex
	users       []models.User
	events      []models.Event
	checkedIn   map[int]bool
	session     *models.User
	filter      models.Filter
	nextUserID  int
	nextEventID int
	version     uint64

	clock func() time.Time
	loc   *time.Location

	subMu   sync.Mutex
	subs    map[int]func(Change)
	nextSub int
}

// New builds a catalog seeded with users and events. The inputs are copied.
func New(users []models.User, events []models.Event, opts ...Option) *Catalog {
	c := &Catalog{
		clock: time.Now,
		loc:   time.Local,
		subs:  make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.load(users, events)
	return c
}

// load replaces all state. Callers hold c.mu (or own c exclusively).
func (c *Catalog) load(users []models.User, events []models.Event) {
	c.users = append([]models.User(nil), users...)
	c.events = make([]models.Event, len(events))
	for i, e := range events {
		c.events[i] = cloneEvent(e)
	}
	c.checkedIn = make(map[int]bool)
	c.session = nil
	c.filter = models.DefaultFilter()

	c.nextUserID = 1
	for _, u := range c.users {
		if u.ID >= c.nextUserID {
			c.nextUserID = u.ID + 1
		}
	}
	c.nextEventID = 1
	for _, e := range c.events {
		if e.ID >= c.nextEventID {
			c.nextEventID = e.ID + 1
		}
	}
}

// Reset restores the catalog to the given seed, clearing the session,
// check-ins and filters.
func (c *Catalog) Reset(users []models.User, events []models.Event) {
	c.mu.Lock()
	c.load(users, events)
	ch := c.commit(ChangeReset, 0)
	c.mu.Unlock()
	c.publish(ch)
}

// Now returns the catalog clock's current time.
func (c *Catalog) Now() time.Time {
	return c.clock()
}

// Subscribe registers fn to be called after every committed mutation.
// The returned function removes the subscription.
func (c *Catalog) Subscribe(fn func(Change)) (cancel func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()
	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// commit bumps the version. Callers hold c.mu.
func (c *Catalog) commit(kind string, eventID int) Change {
	c.version++
	return Change{Version: c.version, Kind: kind, EventID: eventID}
}

// publish must be called without c.mu held.
//
// LEARNING NOTE: every mutation follows the same three steps.
//
//	c.mu.Lock()
//	...change state...
//	ch := c.commit(kind, id)
//	c.mu.Unlock()
//	c.publish(ch)
//
// sync.Mutex is not reentrant: if a subscriber ran while c.mu was held and
// called back into the catalog (the websocket hub does not, but a test
// subscriber calling Snapshot would), the goroutine would block on its
// own lock forever. Publishing after Unlock means a subscriber can read
// state that is already newer than the Change it was handed; the version
// number lets it tell.
func (c *Catalog) publish(ch Change) {
	c.subMu.Lock()
	fns := make([]func(Change), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()
	for _, fn := range fns {
		fn(ch)
	}
}

// Version returns the number of committed mutations.
func (c *Catalog) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Events returns a copy of the full catalog in order.
func (c *Catalog) Events() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cloneEvents()
}

// Users returns a copy of all accounts.
func (c *Catalog) Users() []models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.User(nil), c.users...)
}

// Event returns a copy of the event with the given id.
func (c *Catalog) Event(id int) (models.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return models.Event{}, ErrNotFound
	}
	return cloneEvent(c.events[i]), nil
}

// CheckedIn reports whether the session has checked in to event id.
func (c *Catalog) CheckedIn(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkedIn[id]
}

func (c *Catalog) indexOf(id int) int {
	for i := range c.events {
		if c.events[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) cloneEvents() []models.Event {
	out := make([]models.Event, len(c.events))
	for i, e := range c.events {
		out[i] = cloneEvent(e)
	}
	return out
}

func cloneEvent(e models.Event) models.Event {
	e.Ratings = append(make([]int, 0, len(e.Ratings)), e.Ratings...)
	return e
}
