package handlers

import (
	"net/http"

	"github.com/Elizabethomito/eventboard/internal/calendar"
)

// Reset handles POST /api/admin/reset
//
// Restores the seeded demo catalog: the two demo accounts and the four
// demo events, with the session, check-ins and filters cleared. Safe to
// call repeatedly. Gate or remove it before any real deployment.
//
// Demo accounts (password "123" for both):
//
//	student@mail.com    student
//	organizer@mail.com  organizer
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	data, err := s.Seed.Anchored(s.SeedAnchor, s.Catalog.Now())
	if err != nil {
		s.Log.Error("could not anchor seed", "err", err)
		respondError(w, http.StatusInternalServerError, "could not reset catalog")
		return
	}
	s.Catalog.Reset(data.Users, data.Events)
	s.Log.Info("catalog reset", "users", len(data.Users), "events", len(data.Events))

	respond(w, http.StatusOK, map[string]any{
		"reset":  true,
		"users":  len(data.Users),
		"events": len(data.Events),
	})
}

// Reminders handles GET /api/reminders.ics
//
// Every event with its reminder flag set, as an iCalendar feed with a
// display alarm before each start.
func (s *Server) Reminders(w http.ResponseWriter, r *http.Request) {
	body := calendar.Serialize(s.Catalog.Reminded(), s.Host, s.Catalog.Now())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="reminders.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
