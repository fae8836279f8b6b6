package handlers

import (
	"net/http"

	"github.com/Elizabethomito/eventboard/internal/middleware"
	"github.com/Elizabethomito/eventboard/internal/models"
)

// Routes registers every endpoint on a new mux. feed serves the websocket
// change feed at /api/ws and may be nil.
func (s *Server) Routes(feed http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Public routes.
	mux.HandleFunc("POST /api/auth/login", s.Login)
	mux.HandleFunc("POST /api/auth/signup", s.Signup)
	mux.HandleFunc("POST /api/auth/logout", s.Logout)
	mux.HandleFunc("GET /api/auth/me", s.Me)
	mux.HandleFunc("GET /api/view", s.GetView)
	mux.HandleFunc("POST /api/admin/reset", s.Reset)
	if feed != nil {
		mux.Handle("GET /api/ws", feed)
	}

	session := middleware.RequireSession(s.Catalog)
	onlyOrganizer := middleware.RequireRole(models.RoleOrganizer)
	onlyStudent := middleware.RequireRole(models.RoleStudent)

	// Any logged-in user.
	mux.Handle("PUT /api/filters", session(http.HandlerFunc(s.SetFilters)))
	mux.Handle("GET /api/events/{id}", session(http.HandlerFunc(s.GetEvent)))
	mux.Handle("POST /api/events/{id}/reminder", session(http.HandlerFunc(s.ToggleReminder)))
	mux.Handle("POST /api/events/{id}/ratings", session(http.HandlerFunc(s.AddRating)))
	mux.Handle("GET /api/reminders.ics", session(http.HandlerFunc(s.Reminders)))

	// Organizer-only routes.
	mux.Handle("POST /api/events",
		session(onlyOrganizer(http.HandlerFunc(s.CreateEvent))))
	mux.Handle("GET /api/events/{id}/checkin-code",
		session(onlyOrganizer(http.HandlerFunc(s.CheckInCode))))

	// Student-only routes.
	mux.Handle("POST /api/events/{id}/checkin",
		session(onlyStudent(http.HandlerFunc(s.CheckIn))))
	mux.Handle("POST /api/checkin/scan",
		session(onlyStudent(http.HandlerFunc(s.ScanCheckIn))))

	return mux
}
