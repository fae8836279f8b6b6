package catalog

import (
	"math"

	"github.com/Elizabethomito/eventboard/internal/models"
)

// The predicates below are pure and safe to call repeatedly while
// rendering. A nil user means nobody is logged in.

// CanAddEvent reports whether u may create events.
func CanAddEvent(u *models.User) bool {
	return u != nil && u.Role == models.RoleOrganizer
}

// CanSeeCheckInTool reports whether u gets the check-in QR tool for an
// event in status s.
func CanSeeCheckInTool(u *models.User, s models.Status) bool {
	return u != nil && u.Role == models.RoleOrganizer && s != models.StatusPast
}

// CanCheckIn reports whether u may check in to a live event.
func CanCheckIn(u *models.User, s models.Status, checkedIn bool) bool {
	return u != nil && u.Role == models.RoleStudent && s == models.StatusCurrent && !checkedIn
}

// CanRate reports whether an event in status s accepts ratings.
func CanRate(s models.Status) bool {
	return s != models.StatusUpcoming
}

// CanRegister reports whether the registration link is enabled.
func CanRegister(s models.Status) bool {
	return s != models.StatusPast
}

// CapabilitiesFor bundles every predicate for one event.
func CapabilitiesFor(u *models.User, e models.Event, s models.Status, checkedIn bool) models.Capabilities {
	return models.Capabilities{
		Register:     CanRegister(s),
		Rate:         CanRate(s),
		CheckIn:      CanCheckIn(u, s, checkedIn),
		CheckInTool:  CanSeeCheckInTool(u, s),
		CheckedIn:    checkedIn,
		ShowsWinners: s == models.StatusPast && e.Winners != "",
	}
}

// AverageRating returns the mean of ratings rounded to one decimal place
// and the number of ratings. No ratings yields 0, 0.
func AverageRating(ratings []int) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10, len(ratings)
}

// describe builds the per-event read model.
func describe(u *models.User, e models.Event, s models.Status, checkedIn bool) models.EventView {
	avg, n := AverageRating(e.Ratings)
	caps := CapabilitiesFor(u, e, s, checkedIn)
	highlight := e.Prizes
	if caps.ShowsWinners {
		highlight = e.Winners
	}
	return models.EventView{
		Event:         e,
		Status:        s,
		AverageRating: avg,
		RatingCount:   n,
		Highlight:     highlight,
		Capabilities:  caps,
	}
}
