package handlers

import (
	"net/http"

	"github.com/Elizabethomito/eventboard/internal/checkin"
	"github.com/Elizabethomito/eventboard/internal/models"
)

// CheckInCode handles GET /api/events/{id}/checkin-code  (organizer only)
//
// This backs the organizer's QR tool. The tool is hidden for past events,
// so a code is only issued while the event is upcoming or live. The code
// expires when the event ends.
func (s *Server) CheckInCode(w http.ResponseWriter, r *http.Request) {
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
	if !detail.Capabilities.CheckInTool {
		respondError(w, http.StatusForbidden, "check-in codes are not available for this event")
		return
	}

	code, err := checkin.GenerateCode(id, s.Catalog.Now(), detail.End, s.Secret)
	if err != nil {
		s.Log.Error("could not sign check-in code", "event_id", id, "err", err)
		respondError(w, http.StatusInternalServerError, "could not generate check-in code")
		return
	}
	respond(w, http.StatusOK, models.CheckInCodeResponse{
		EventID:   id,
		Token:     code,
		ExpiresAt: detail.End,
	})
}

// ScanCheckIn handles POST /api/checkin/scan  (student only)
//
// The student's device posts the code read from the organizer's QR. A
// valid code checks the session in to the event it names, under the same
// gate as the plain check-in button.
func (s *Server) ScanCheckIn(w http.ResponseWriter, r *http.Request) {
	var req models.CheckInScanRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Token == "" {
		respondError(w, http.StatusBadRequest, "token is required")
		return
	}

	claims, err := checkin.ParseCode(req.Token, s.Secret, s.Catalog.Now())
	if err != nil {
		s.Log.Info("check-in code rejected", "err", err)
		respondError(w, http.StatusBadRequest, "invalid or expired check-in code")
		return
	}
	s.checkIn(w, claims.EventID)
}
