package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Elizabethomito/eventboard/internal/catalog"
	"github.com/Elizabethomito/eventboard/internal/models"
)

func eventForm() map[string]string {
	return map[string]string{
		"title":             "Robotics Demo",
		"category":          "Club",
		"start":             "2025-12-01T10:00",
		"end":               "2025-12-01T12:00",
		"location":          "Lab 3",
		"description":       "Student-built robots compete.",
		"organizer":         "Robotics Club",
		"registration_link": "https://register.example.com/robots",
	}
}

func TestGetEvent(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	rec := do(t, srv, http.MethodGet, "/api/events/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var d models.EventView
	decodeBody(t, rec, &d)
	if d.Title != "TechFest 2025" || d.AverageRating != 4.6 || d.RatingCount != 5 {
		t.Errorf("detail: %+v", d)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	for _, path := range []string{"/api/events/99", "/api/events/abc"} {
		if rec := do(t, srv, http.MethodGet, path, nil); rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rec.Code)
		}
	}
}

func TestCreateEvent_Success(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "organizer@mail.com")

	form := eventForm()
	form["winners"] = "1st: Team Rocket"
	rec := do(t, srv, http.MethodPost, "/api/events", form)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var e models.Event
	decodeBody(t, rec, &e)
	if e.ID != 5 || e.Category != models.CategoryClub || e.Image != catalog.DefaultImage {
		t.Errorf("event: %+v", e)
	}
	if e.Winners != "" {
		t.Errorf("new event has winners %q, want unset", e.Winners)
	}
	if n := len(srv.Catalog.Events()); n != 5 {
		t.Errorf("catalog length: %d", n)
	}
}

func TestCreateEvent_MissingLocation(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "organizer@mail.com")

	form := eventForm()
	delete(form, "location")
	rec := do(t, srv, http.MethodPost, "/api/events", form)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); !strings.Contains(got, "location") {
		t.Errorf("message should name location: %q", got)
	}
	if n := len(srv.Catalog.Events()); n != 4 {
		t.Errorf("catalog length changed: %d", n)
	}
}

func TestCreateEvent_StudentForbidden(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	if rec := do(t, srv, http.MethodPost, "/api/events", eventForm()); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestToggleReminder(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	rec := do(t, srv, http.MethodPost, "/api/events/2/reminder", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var e models.Event
	decodeBody(t, rec, &e)
	if !e.Reminded {
		t.Error("expected reminder to be set")
	}
}

func TestAddRating_PastEvent(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	rec := do(t, srv, http.MethodPost, "/api/events/3/ratings", models.RatingRequest{Rating: "2"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var d models.EventView
	decodeBody(t, rec, &d)
	if d.RatingCount != 4 || d.AverageRating != 4 {
		t.Errorf("rating: %v/%d", d.AverageRating, d.RatingCount)
	}
}

func TestAddRating_UpcomingForbidden(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	rec := do(t, srv, http.MethodPost, "/api/events/1/ratings", models.RatingRequest{Rating: "5"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	e, _ := srv.Catalog.Event(1)
	if len(e.Ratings) != 5 {
		t.Errorf("rating recorded on upcoming event: %v", e.Ratings)
	}
}

func TestAddRating_OutOfRange(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	rec := do(t, srv, http.MethodPost, "/api/events/4/ratings", models.RatingRequest{Rating: "9"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCheckIn_LiveEvent(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	for i := 0; i < 2; i++ {
		rec := do(t, srv, http.MethodPost, "/api/events/4/checkin", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("check-in %d: expected 200, got %d", i+1, rec.Code)
		}
		var resp models.CheckInResponse
		decodeBody(t, rec, &resp)
		if !resp.CheckedIn || resp.EventID != 4 {
			t.Errorf("response: %+v", resp)
		}
	}

	var d models.EventView
	decodeBody(t, do(t, srv, http.MethodGet, "/api/events/4", nil), &d)
	if !d.Capabilities.CheckedIn || d.Capabilities.CheckIn {
		t.Errorf("capabilities after check-in: %+v", d.Capabilities)
	}
}

func TestCheckIn_NotLive(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	for _, id := range []string{"1", "3"} {
		rec := do(t, srv, http.MethodPost, "/api/events/"+id+"/checkin", nil)
		if rec.Code != http.StatusForbidden {
			t.Errorf("event %s: expected 403, got %d", id, rec.Code)
		}
	}
}

func TestCheckIn_OrganizerForbidden(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "organizer@mail.com")

	if rec := do(t, srv, http.MethodPost, "/api/events/4/checkin", nil); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}
