package handlers

import (
	"net/http"

	"github.com/Elizabethomito/eventboard/internal/catalog"
	"github.com/Elizabethomito/eventboard/internal/models"
)

// GetEvent handles GET /api/events/{id}
//
// The detail view carries the event's status, rating average and the
// capability flags the modal needs.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		respondErr(w, err)
		return
	}
	detail, err := s.Catalog.EventDetail(id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, detail)
}

// CreateEvent handles POST /api/events  (organizer only)
//
// The body is the raw add-event form: an object of field name to string.
// Parsing and validation happen in the catalog.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := decode(r, &fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	e, err := s.Catalog.AddEvent(fields)
	if err != nil {
		respondErr(w, err)
		return
	}
	s.Log.Info("event added", "event_id", e.ID, "title", e.Title)
	respond(w, http.StatusCreated, e)
}

// ToggleReminder handles POST /api/events/{id}/reminder
func (s *Server) ToggleReminder(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		respondErr(w, err)
		return
	}
	e, err := s.Catalog.ToggleReminder(id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, e)
}

// AddRating handles POST /api/events/{id}/ratings
//
// Ratings open once an event has started.
func (s *Server) AddRating(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		respondErr(w, err)
		return
	}
	var req models.RatingRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	rating, err := catalog.ParseRating(req.Rating)
	if err != nil {
		respondErr(w, err)
		return
	}

	detail, err := s.Catalog.EventDetail(id)
	if err != nil {
		respondErr(w, err)
		return
	}
	if !detail.Capabilities.Rate {
		respondError(w, http.StatusForbidden, "ratings open once the event has started")
		return
	}

	if _, err := s.Catalog.AddRating(id, rating); err != nil {
		respondErr(w, err)
		return
	}
	detail, err = s.Catalog.EventDetail(id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, detail)
}

// CheckIn handles POST /api/events/{id}/checkin  (student only)
//
// Checking in twice is not an error: the second call reports the existing
// check-in.
func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		respondErr(w, err)
		return
	}
	s.checkIn(w, id)
}

// checkIn applies the student check-in gate and records the check-in.
func (s *Server) checkIn(w http.ResponseWriter, id int) {
	detail, err := s.Catalog.EventDetail(id)
	if err != nil {
		respondErr(w, err)
		return
	}
	caps := detail.Capabilities
	if !caps.CheckedIn && !caps.CheckIn {
		respondError(w, http.StatusForbidden, "check-in is only open while the event is live")
		return
	}
	if err := s.Catalog.RecordCheckIn(id); err != nil {
		respondErr(w, err)
		return
	}
	if !caps.CheckedIn {
		s.Log.Info("checked in", "event_id", id)
	}
	respond(w, http.StatusOK, models.CheckInResponse{EventID: id, CheckedIn: true})
}
