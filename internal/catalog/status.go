package catalog

import (
	"time"

	"github.com/Elizabethomito/eventboard/internal/models"
)

// Classify returns the status of an event spanning [start, end] at now.
//
// Both bounds are inclusive for "current". An event whose end is before its
// start is not rejected; it simply never classifies as current.
func Classify(start, end, now time.Time) models.Status {
	switch {
	case now.After(end):
		return models.StatusPast
	case !now.Before(start):
		return models.StatusCurrent
	default:
		return models.StatusUpcoming
	}
}

// StatusOf is Classify applied to an event.
func StatusOf(e models.Event, now time.Time) models.Status {
	return Classify(e.Start, e.End, now)
}
