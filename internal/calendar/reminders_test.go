package calendar

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Elizabethomito/eventboard/internal/models"
)

func TestSerialize_RoundTrip(t *testing.T) {
	start := time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)
	events := []models.Event{{
		ID:              1,
		Title:           "TechFest 2025",
		Category:        models.CategoryTech,
		Start:           start,
		End:             start.Add(8 * time.Hour),
		Location:        "Auditorium A",
		Description:     "Annual technology festival.",
		RegistrationURL: "https://register.example.com/techfest",
	}}
	stamp := time.Date(2025, 11, 16, 14, 10, 0, 0, time.UTC)

	body := Serialize(events, "board.example", stamp)
	if !strings.Contains(body, "TRIGGER:-PT30M") {
		t.Errorf("expected a 30 minute alarm:\n%s", body)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	parsed := cal.Events()
	if len(parsed) != 1 {
		t.Fatalf("expected 1 event, got %d", len(parsed))
	}
	ev := parsed[0]
	if ev.Id() != "event-1@board.example" {
		t.Errorf("uid: got %q", ev.Id())
	}
	if got := ev.GetProperty(ical.ComponentPropertySummary).Value; got != "TechFest 2025" {
		t.Errorf("summary: got %q", got)
	}
	if got := ev.GetProperty(ical.ComponentPropertyCategories).Value; got != "Tech" {
		t.Errorf("categories: got %q", got)
	}
	got, err := ev.GetStartAt()
	if err != nil || !got.Equal(start) {
		t.Errorf("start: got %s, %v", got, err)
	}
}

func TestSerialize_NoEvents(t *testing.T) {
	body := Serialize(nil, "localhost", time.Now())
	if !strings.Contains(body, "BEGIN:VCALENDAR") || strings.Contains(body, "BEGIN:VEVENT") {
		t.Errorf("unexpected calendar:\n%s", body)
	}
}

func TestReminders_SkipsEmptyURL(t *testing.T) {
	now := time.Now()
	cal := Reminders([]models.Event{{ID: 2, Title: "x", Category: models.CategoryClub, Start: now, End: now}}, "h", now)
	if p := cal.Events()[0].GetProperty(ical.ComponentPropertyUrl); p != nil {
		t.Errorf("expected no URL property, got %q", p.Value)
	}
}
