// Package seed loads the demo catalog: the fixed user list and the events
// a fresh session starts with.
//
// The catalog is a YAML document. The built-in one is embedded in the
// binary; SEED_FILE can point at a replacement with the same shape.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Elizabethomito/eventboard/internal/models"
)

//go:embed seed.yaml
var defaultYAML []byte

// Anchor modes for Data.Anchored.
const (
	AnchorNow   = "now"
	AnchorFixed = "fixed"
)

const timestampLayout = "2006-01-02T15:04:05"

// Data is a decoded seed catalog.
type Data struct {
	// Reference is the instant the timestamps were written against.
	Reference time.Time
	Users     []models.User
	Events    []models.Event
}

type document struct {
	Reference string     `yaml:"reference"`
	Users     []userRow  `yaml:"users"`
	Events    []eventRow `yaml:"events"`
}

type userRow struct {
	ID       int    `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type eventRow struct {
	ID               int    `yaml:"id"`
	Title            string `yaml:"title"`
	Category         string `yaml:"category"`
	Start            string `yaml:"start"`
	End              string `yaml:"end"`
	Location         string `yaml:"location"`
	Description      string `yaml:"description"`
	Organizer        string `yaml:"organizer"`
	RegistrationLink string `yaml:"registration_link"`
	Prizes           string `yaml:"prizes"`
	Winners          string `yaml:"winners"`
	Image            string `yaml:"image"`
	Attendees        int    `yaml:"attendees"`
	Ratings          []int  `yaml:"ratings"`
	Reminded         bool   `yaml:"reminded"`
}

// Default decodes the embedded catalog.
func Default(loc *time.Location) (Data, error) {
	return Parse(defaultYAML, loc)
}

// Load decodes the catalog at path, or the embedded one when path is empty.
func Load(path string, loc *time.Location) (Data, error) {
	if path == "" {
		return Default(loc)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(body, loc)
}

// Parse decodes and validates a seed document. Timestamps without an
// offset are read in loc.
func Parse(body []byte, loc *time.Location) (Data, error) {
	var doc document
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return Data{}, fmt.Errorf("decode seed: %w", err)
	}

	var out Data
	var err error
	if doc.Reference != "" {
		if out.Reference, err = parseTime(doc.Reference, loc); err != nil {
			return Data{}, fmt.Errorf("seed reference: %w", err)
		}
	}

	emails := make(map[string]bool, len(doc.Users))
	for _, u := range doc.Users {
		role := models.Role(u.Role)
		if !role.Valid() {
			return Data{}, fmt.Errorf("seed user %d: unknown role %q", u.ID, u.Role)
		}
		if emails[u.Email] {
			return Data{}, fmt.Errorf("seed user %d: duplicate email %q", u.ID, u.Email)
		}
		emails[u.Email] = true
		out.Users = append(out.Users, models.User{
			ID:       u.ID,
			Email:    u.Email,
			Password: u.Password,
			Role:     role,
		})
	}

	ids := make(map[int]bool, len(doc.Events))
	for _, r := range doc.Events {
		e, err := r.toEvent(loc)
		if err != nil {
			return Data{}, fmt.Errorf("seed event %d: %w", r.ID, err)
		}
		if ids[e.ID] {
			return Data{}, fmt.Errorf("seed event %d: duplicate id", e.ID)
		}
		ids[e.ID] = true
		out.Events = append(out.Events, e)
	}
	return out, nil
}

func (r eventRow) toEvent(loc *time.Location) (models.Event, error) {
	start, err := parseTime(r.Start, loc)
	if err != nil {
		return models.Event{}, fmt.Errorf("start: %w", err)
	}
	end, err := parseTime(r.End, loc)
	if err != nil {
		return models.Event{}, fmt.Errorf("end: %w", err)
	}
	category := models.Category(r.Category)
	valid := false
	for _, c := range models.Categories[1:] {
		if c == category {
			valid = true
		}
	}
	if !valid {
		return models.Event{}, fmt.Errorf("unknown category %q", r.Category)
	}
	if r.Attendees < 0 {
		return models.Event{}, fmt.Errorf("negative attendee count")
	}
	for _, v := range r.Ratings {
		if v < 1 || v > 5 {
			return models.Event{}, fmt.Errorf("rating %d out of range", v)
		}
	}
	return models.Event{
		ID:              r.ID,
		Title:           r.Title,
		Category:        category,
		Start:           start,
		End:             end,
		Location:        r.Location,
		Description:     r.Description,
		Organizer:       r.Organizer,
		RegistrationURL: r.RegistrationLink,
		Prizes:          r.Prizes,
		Winners:         r.Winners,
		Image:           r.Image,
		Attendees:       r.Attendees,
		Ratings:         append([]int{}, r.Ratings...),
		Reminded:        r.Reminded,
	}, nil
}

// Anchored returns a copy of d. In AnchorNow mode every event is shifted
// so that Reference coincides with now; AnchorFixed leaves times alone.
func (d Data) Anchored(mode string, now time.Time) (Data, error) {
	switch mode {
	case AnchorFixed, "":
		return d, nil
	case AnchorNow:
	default:
		return Data{}, fmt.Errorf("unknown seed anchor %q", mode)
	}
	if d.Reference.IsZero() {
		return d, nil
	}
	shift := now.Sub(d.Reference)
	out := Data{
		Reference: now,
		Users:     append([]models.User(nil), d.Users...),
		Events:    make([]models.Event, len(d.Events)),
	}
	for i, e := range d.Events {
		e.Start = e.Start.Add(shift)
		e.End = e.End.Add(shift)
		e.Ratings = append([]int{}, e.Ratings...)
		out.Events[i] = e
	}
	return out, nil
}

func parseTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation(timestampLayout, raw, loc)
}
