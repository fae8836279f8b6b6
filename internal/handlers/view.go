package handlers

import (
	"net/http"

	"github.com/Elizabethomito/eventboard/internal/catalog"
	"github.com/Elizabethomito/eventboard/internal/models"
)

// GetView handles GET /api/view
//
// This is the read accessor the renderer calls after every change: the
// filtered event list plus per-event capability flags. While logged out
// the list is empty.
func (s *Server) GetView(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.Catalog.Snapshot())
}

// SetFilters handles PUT /api/filters
//
// Fields left out of the body keep their current value. An explicit empty
// search clears the search term.
func (s *Server) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req models.FilterRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	f := s.Catalog.Filter()
	var bad []string
	if req.Category != "" {
		c, err := catalog.ParseCategory(req.Category)
		if err != nil {
			bad = append(bad, "category")
		}
		f.Category = c
	}
	if req.Time != "" {
		tf, err := catalog.ParseTimeFilter(req.Time)
		if err != nil {
			bad = append(bad, "time")
		}
		f.Time = tf
	}
	if req.View != "" {
		v, err := catalog.ParseViewMode(req.View)
		if err != nil {
			bad = append(bad, "view")
		}
		f.View = v
	}
	if req.Search != nil {
		f.Search = *req.Search
	}
	if len(bad) > 0 {
		respondErr(w, &catalog.ValidationError{Invalid: bad})
		return
	}

	if err := s.Catalog.SetFilter(f); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, s.Catalog.Snapshot())
}
