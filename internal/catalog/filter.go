package catalog

import (
	"strings"
	"time"

	"github.com/Elizabethomito/eventboard/internal/models"
)

// FilterEvents returns the events matching f at now, in catalog order.
//
// The time, category and search dimensions are ANDed. The result is never
// nil, so an empty match is distinguishable from a missing view.
func FilterEvents(events []models.Event, f models.Filter, now time.Time) []models.Event {
	term := strings.ToLower(f.Search)
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if f.Time != models.TimeAll && string(StatusOf(e, now)) != string(f.Time) {
			continue
		}
		if f.Category != models.CategoryAll && e.Category != f.Category {
			continue
		}
		if term != "" && !matchesSearch(e, term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// matchesSearch expects term to be lower-cased already.
func matchesSearch(e models.Event, term string) bool {
	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Description), term)
}

// ParseTimeFilter validates a raw time filter value.
func ParseTimeFilter(raw string) (models.TimeFilter, error) {
	for _, tf := range models.TimeFilters {
		if string(tf) == raw {
			return tf, nil
		}
	}
	return "", invalid("time")
}

// ParseCategory validates a raw category value, including "All".
func ParseCategory(raw string) (models.Category, error) {
	for _, c := range models.Categories {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", invalid("category")
}

// ParseViewMode validates a raw view mode value.
func ParseViewMode(raw string) (models.ViewMode, error) {
	switch models.ViewMode(raw) {
	case models.ViewGrid, models.ViewList:
		return models.ViewMode(raw), nil
	}
	return "", invalid("view")
}

func validateFilter(f models.Filter) error {
	var bad []string
	if _, err := ParseTimeFilter(string(f.Time)); err != nil {
		bad = append(bad, "time")
	}
	if _, err := ParseCategory(string(f.Category)); err != nil {
		bad = append(bad, "category")
	}
	if _, err := ParseViewMode(string(f.View)); err != nil {
		bad = append(bad, "view")
	}
	if len(bad) > 0 {
		return invalid(bad...)
	}
	return nil
}
