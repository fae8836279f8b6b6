package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Elizabethomito/eventboard/internal/checkin"
	"github.com/Elizabethomito/eventboard/internal/models"
)

func TestCheckInCode_AndScan(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "organizer@mail.com")

	rec := do(t, srv, http.MethodGet, "/api/events/4/checkin-code", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var code models.CheckInCodeResponse
	decodeBody(t, rec, &code)
	if code.EventID != 4 || code.Token == "" {
		t.Fatalf("code: %+v", code)
	}
	want := time.Date(2025, 11, 16, 16, 0, 0, 0, time.UTC)
	if !code.ExpiresAt.Equal(want) {
		t.Errorf("expires_at: got %s, want %s", code.ExpiresAt, want)
	}

	loginAs(t, srv, "student@mail.com")
	rec = do(t, srv, http.MethodPost, "/api/checkin/scan", models.CheckInScanRequest{Token: code.Token})
	if rec.Code != http.StatusOK {
		t.Fatalf("scan: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !srv.Catalog.CheckedIn(4) {
		t.Error("expected event 4 to be checked in")
	}
}

func TestCheckInCode_PastEventForbidden(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "organizer@mail.com")

	if rec := do(t, srv, http.MethodGet, "/api/events/3/checkin-code", nil); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestScanCheckIn_RejectsBadCodes(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	if rec := do(t, srv, http.MethodPost, "/api/checkin/scan", models.CheckInScanRequest{}); rec.Code != http.StatusBadRequest {
		t.Errorf("empty token: expected 400, got %d", rec.Code)
	}

	forged, err := checkin.GenerateCode(4, testNow, testNow.Add(time.Hour), "not-the-server-secret")
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	rec := do(t, srv, http.MethodPost, "/api/checkin/scan", models.CheckInScanRequest{Token: forged})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("forged token: expected 400, got %d", rec.Code)
	}
	if srv.Catalog.CheckedIn(4) {
		t.Error("forged code checked the session in")
	}
}

func TestScanCheckIn_UpcomingEventForbidden(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	code, err := checkin.GenerateCode(1, testNow, testNow.Add(96*time.Hour), testSecret)
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	rec := do(t, srv, http.MethodPost, "/api/checkin/scan", models.CheckInScanRequest{Token: code})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestReminders_ICS(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")
	do(t, srv, http.MethodPost, "/api/events/1/reminder", nil)

	rec := do(t, srv, http.MethodGet, "/api/reminders.ics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content type: %q", ct)
	}
	cal, err := ical.ParseCalendar(rec.Body)
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	var uids []string
	for _, e := range cal.Events() {
		uids = append(uids, e.Id())
	}
	// Seed event 4 is reminded already; event 1 was just toggled on.
	if len(uids) != 2 || uids[0] != "event-1@test.local" || uids[1] != "event-4@test.local" {
		t.Errorf("uids: %v", uids)
	}
}

func TestReset(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "organizer@mail.com")
	do(t, srv, http.MethodPost, "/api/events", eventForm())

	rec := do(t, srv, http.MethodPost, "/api/admin/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if n := len(srv.Catalog.Events()); n != 4 {
		t.Errorf("events after reset: %d", n)
	}
	if _, ok := srv.Catalog.CurrentUser(); ok {
		t.Error("reset should clear the session")
	}
	e, _ := srv.Catalog.Event(1)
	if !e.Start.Equal(time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("fixed anchor should keep seed times, got %s", e.Start)
	}
}
