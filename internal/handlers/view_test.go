package handlers

import (
	"net/http"
	"testing"

	"github.com/Elizabethomito/eventboard/internal/models"
)

func TestGetView_LoggedOut(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/view", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var v models.View
	decodeBody(t, rec, &v)
	if v.LoggedIn || v.User != nil || len(v.Events) != 0 {
		t.Errorf("logged-out view: %+v", v)
	}
	if len(v.Categories) != 7 || v.Categories[0] != models.CategoryAll {
		t.Errorf("categories: %v", v.Categories)
	}
}

func TestGetView_OrganizerDefaultFilter(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "organizer@mail.com")

	var v models.View
	decodeBody(t, do(t, srv, http.MethodGet, "/api/view", nil), &v)
	if !v.CanAddEvent {
		t.Error("organizer should be able to add events")
	}
	if len(v.Events) != 2 || v.Events[0].ID != 1 || v.Events[1].ID != 2 {
		t.Fatalf("events: %+v", v.Events)
	}
	if v.Events[0].Status != models.StatusUpcoming || !v.Events[0].Capabilities.CheckInTool {
		t.Errorf("event 1: %+v", v.Events[0])
	}
}

func TestSetFilters_PartialUpdate(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	rec := do(t, srv, http.MethodPut, "/api/filters", models.FilterRequest{Time: "past"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var v models.View
	decodeBody(t, rec, &v)
	if v.Filter.Time != models.TimePast || v.Filter.View != models.ViewGrid {
		t.Errorf("filter: %+v", v.Filter)
	}
	if len(v.Events) != 1 || v.Events[0].ID != 3 {
		t.Fatalf("events: %+v", v.Events)
	}
	ev := v.Events[0]
	if !ev.Capabilities.ShowsWinners || ev.Capabilities.Register || ev.Highlight != ev.Winners {
		t.Errorf("past event: %+v", ev)
	}
}

func TestSetFilters_SearchAndClear(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	term := "nothing matches this"
	var v models.View
	decodeBody(t, do(t, srv, http.MethodPut, "/api/filters",
		models.FilterRequest{Time: "all", Search: &term}), &v)
	if !v.NoResults || len(v.Events) != 0 {
		t.Errorf("expected no results: %+v", v)
	}

	empty := ""
	decodeBody(t, do(t, srv, http.MethodPut, "/api/filters",
		models.FilterRequest{Search: &empty}), &v)
	if v.Filter.Search != "" || len(v.Events) != 4 {
		t.Errorf("after clearing: %d events, filter %+v", len(v.Events), v.Filter)
	}
	if v.FiltersActive {
		t.Error("all/All/empty should not count as active")
	}
}

func TestSetFilters_Invalid(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "student@mail.com")

	rec := do(t, srv, http.MethodPut, "/api/filters",
		models.FilterRequest{Category: "Music", View: "table"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); got != "invalid fields: category, view" {
		t.Errorf("message: %q", got)
	}
	if srv.Catalog.Filter() != models.DefaultFilter() {
		t.Error("filter changed after rejected update")
	}
}

func TestSetFilters_RequiresSession(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPut, "/api/filters", models.FilterRequest{Time: "all"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
