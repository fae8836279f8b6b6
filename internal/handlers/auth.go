package handlers

import (
	"net/http"

	"github.com/Elizabethomito/eventboard/internal/catalog"
	"github.com/Elizabethomito/eventboard/internal/models"
)

// Login handles POST /api/auth/login
//
// A failed login leaves any existing session in place, so the renderer can
// show the message next to the untouched form.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := s.Catalog.Login(req.Email, req.Password)
	if err != nil {
		s.Log.Info("login rejected", "email", req.Email)
		respondErr(w, err)
		return
	}
	s.Log.Info("logged in", "user_id", user.ID, "role", user.Role)
	respond(w, http.StatusOK, user)
}

// Signup handles POST /api/auth/signup
func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	role, err := catalog.ParseRole(req.Role)
	if err != nil {
		respondErr(w, err)
		return
	}
	user, err := s.Catalog.Signup(req.Email, req.Password, role)
	if err != nil {
		respondErr(w, err)
		return
	}
	s.Log.Info("account created", "user_id", user.ID, "role", user.Role)
	respond(w, http.StatusCreated, user)
}

// Logout handles POST /api/auth/logout
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.Catalog.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := s.Catalog.CurrentUser()
	if !ok {
		respondError(w, http.StatusUnauthorized, "please log in")
		return
	}
	respond(w, http.StatusOK, user)
}
