package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/Elizabethomito/eventboard/internal/models"
)

// Form field names accepted by AddEvent.
const (
	FieldTitle            = "title"
	FieldCategory         = "category"
	FieldStart            = "start"
	FieldEnd              = "end"
	FieldLocation         = "location"
	FieldDescription      = "description"
	FieldOrganizer        = "organizer"
	FieldRegistrationLink = "registration_link"
	FieldPrizes           = "prizes"
)

// requiredFields is in form order so errors list fields the way the form
// shows them.
var requiredFields = []string{
	FieldTitle,
	FieldStart,
	FieldEnd,
	FieldLocation,
	FieldDescription,
	FieldOrganizer,
	FieldRegistrationLink,
}

// Layouts accepted for form timestamps. The last two carry no offset and
// are read in the catalog's location.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ToggleReminder flips the reminder flag on event id.
func (c *Catalog) ToggleReminder(id int) (models.Event, error) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return models.Event{}, ErrNotFound
	}
	c.events[i].Reminded = !c.events[i].Reminded
	e := cloneEvent(c.events[i])
	ch := c.commit(ChangeReminder, id)
	c.mu.Unlock()

	c.publish(ch)
	return e, nil
}

// RecordCheckIn marks event id as checked in for this session. Repeating it
// changes nothing and publishes nothing.
func (c *Catalog) RecordCheckIn(id int) error {
	c.mu.Lock()
	if c.indexOf(id) < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	if c.checkedIn[id] {
		c.mu.Unlock()
		return nil
	}
	c.checkedIn[id] = true
	ch := c.commit(ChangeCheckIn, id)
	c.mu.Unlock()

	c.publish(ch)
	return nil
}

// AddRating appends rating, which must be in [1, 5], to event id.
func (c *Catalog) AddRating(id, rating int) (models.Event, error) {
	if rating < 1 || rating > 5 {
		return models.Event{}, invalid("rating")
	}
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return models.Event{}, ErrNotFound
	}
	c.events[i].Ratings = append(c.events[i].Ratings, rating)
	e := cloneEvent(c.events[i])
	ch := c.commit(ChangeRating, id)
	c.mu.Unlock()

	c.publish(ch)
	return e, nil
}

// ParseRating reads a rating from a raw form value.
func ParseRating(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > 5 {
		return 0, invalid("rating")
	}
	return n, nil
}

// AddEvent validates raw form fields and appends a new event. Every
// missing required field is reported at once. New events start with no
// winners, no attendees, no ratings and the default image; form keys
// outside the known fields are ignored.
func (c *Catalog) AddEvent(fields map[string]string) (models.Event, error) {
	get := func(k string) string { return strings.TrimSpace(fields[k]) }

	ve := &ValidationError{}
	for _, k := range requiredFields {
		if get(k) == "" {
			ve.Missing = append(ve.Missing, k)
		}
	}

	category := models.DefaultEventCategory()
	if raw := get(FieldCategory); raw != "" {
		parsed, err := ParseCategory(raw)
		if err != nil || parsed == models.CategoryAll {
			ve.Invalid = append(ve.Invalid, FieldCategory)
		} else {
			category = parsed
		}
	}

	var start, end time.Time
	var err error
	if raw := get(FieldStart); raw != "" {
		if start, err = c.parseTimestamp(raw); err != nil {
			ve.Invalid = append(ve.Invalid, FieldStart)
		}
	}
	if raw := get(FieldEnd); raw != "" {
		if end, err = c.parseTimestamp(raw); err != nil {
			ve.Invalid = append(ve.Invalid, FieldEnd)
		}
	}
	if len(ve.Missing) > 0 || len(ve.Invalid) > 0 {
		return models.Event{}, ve
	}

	c.mu.Lock()
	e := models.Event{
		ID:              c.nextEventID,
		Title:           get(FieldTitle),
		Category:        category,
		Start:           start,
		End:             end,
		Location:        get(FieldLocation),
		Description:     get(FieldDescription),
		Organizer:       get(FieldOrganizer),
		RegistrationURL: get(FieldRegistrationLink),
		Prizes:          get(FieldPrizes),
		Image:           DefaultImage,
		Attendees:       0,
		Ratings:         []int{},
		Reminded:        false,
	}
	c.nextEventID++
	c.events = append(c.events, e)
	ch := c.commit(ChangeEvent, e.ID)
	c.mu.Unlock()

	c.publish(ch)
	return cloneEvent(e), nil
}

// SetFilter replaces the filter selection after validating every field.
func (c *Catalog) SetFilter(f models.Filter) error {
	if err := validateFilter(f); err != nil {
		return err
	}
	c.mu.Lock()
	c.filter = f
	ch := c.commit(ChangeFilter, 0)
	c.mu.Unlock()

	c.publish(ch)
	return nil
}

// Filter returns the current filter selection.
func (c *Catalog) Filter() models.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *Catalog) parseTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, c.loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
