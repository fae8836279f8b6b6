package models

import "time"

// Role defines the type of user account.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleOrganizer
}

// Status is the temporal classification of an event relative to now.
type Status string

const (
	StatusPast     Status = "past"
	StatusCurrent  Status = "current"
	StatusUpcoming Status = "upcoming"
)

// Category is the fixed set of event categories. CategoryAll is only a
// filter value and is never stored on an event.
type Category string

const (
	CategoryAll      Category = "All"
	CategoryTech     Category = "Tech"
	CategoryCultural Category = "Cultural"
	CategorySeminar  Category = "Seminar"
	CategoryClub     Category = "Club"
	CategorySports   Category = "Sports"
	CategoryWorkshop Category = "Workshop"
)

// Categories lists the filter values in display order. The first entry
// after CategoryAll is the default for new events.
var Categories = []Category{
	CategoryAll,
	CategoryTech,
	CategoryCultural,
	CategorySeminar,
	CategoryClub,
	CategorySports,
	CategoryWorkshop,
}

// DefaultEventCategory is the first non-"All" category.
func DefaultEventCategory() Category {
	return Categories[1]
}

// TimeFilter selects events by status; TimeAll disables the filter.
type TimeFilter string

const (
	TimeUpcoming TimeFilter = "upcoming"
	TimeCurrent  TimeFilter = "current"
	TimePast     TimeFilter = "past"
	TimeAll      TimeFilter = "all"
)

// TimeFilters lists the time filter values in display order.
var TimeFilters = []TimeFilter{TimeUpcoming, TimeCurrent, TimePast, TimeAll}

// ViewMode is display-only and never affects filtering.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// User is an account. Passwords are compared by exact match.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// Event is one scheduled activity in the catalog.
type Event struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Category        Category  `json:"category"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Organizer       string    `json:"organizer"`
	RegistrationURL string    `json:"registration_link"`
	Prizes          string    `json:"prizes,omitempty"`
	// Winners is only shown once the event is past.
	Winners   string `json:"winners,omitempty"`
	Image     string `json:"image"`
	Attendees int    `json:"attendees"`
	Ratings   []int  `json:"ratings"`
	Reminded  bool   `json:"reminded"`
}

// Filter is the user-selected filter state.
type Filter struct {
	Category Category   `json:"category"`
	Time     TimeFilter `json:"time"`
	Search   string     `json:"search"`
	View     ViewMode   `json:"view"`
}

// DefaultFilter is the filter state of a fresh session.
func DefaultFilter() Filter {
	return Filter{
		Category: CategoryAll,
		Time:     TimeUpcoming,
		Search:   "",
		View:     ViewGrid,
	}
}

// Active reports whether any filter dimension narrows the catalog.
func (f Filter) Active() bool {
	return f.Time != TimeAll || f.Category != CategoryAll || f.Search != ""
}

// Capabilities gate the affordances shown for one event.
type Capabilities struct {
	Register     bool `json:"register"`
	Rate         bool `json:"rate"`
	CheckIn      bool `json:"check_in"`
	CheckInTool  bool `json:"check_in_tool"`
	CheckedIn    bool `json:"checked_in"`
	ShowsWinners bool `json:"shows_winners"`
}

// EventView is an event plus everything derived from it for one render pass.
type EventView struct {
	Event
	Status        Status  `json:"status"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`

	// Highlight is the winners text for past events that have one,
	// otherwise the prizes text.
	Highlight    string       `json:"highlight,omitempty"`
	Capabilities Capabilities `json:"capabilities"`
}

// View is the read model handed to the renderer after every change.
type View struct {
	Version     uint64       `json:"version"`
	Now         time.Time    `json:"now"`
	User        *User        `json:"user"`
	LoggedIn    bool         `json:"logged_in"`
	CanAddEvent bool         `json:"can_add_event"`
	Filter      Filter       `json:"filter"`
	Categories  []Category   `json:"categories"`
	TimeFilters []TimeFilter `json:"time_filters"`
	Events      []EventView  `json:"events"`
	// FiltersActive and NoResults let the renderer tell an explicit
	// "no results" state apart from an empty catalog.
	FiltersActive bool `json:"filters_active"`
	NoResults     bool `json:"no_results"`
}

// ---- Request / Response DTOs ----

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// FilterRequest carries raw filter values; empty fields keep their
// current value.
type FilterRequest struct {
	Category string  `json:"category"`
	Time     string  `json:"time"`
	Search   *string `json:"search"`
	View     string  `json:"view"`
}

type RatingRequest struct {
	Rating string `json:"rating"`
}

type CheckInScanRequest struct {
	Token string `json:"token"`
}

type CheckInCodeResponse struct {
	EventID   int       `json:"event_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CheckInResponse struct {
	EventID   int  `json:"event_id"`
	CheckedIn bool `json:"checked_in"`
}
