// Package handlers is the renderer boundary of the event board: each
// handler decodes raw form values, calls into the catalog and answers with
// JSON read models. No handler formats markup.
//
// All handler files share the Server type; they are split by concern
// (auth, view, events, checkin, reset) for readability.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Elizabethomito/eventboard/internal/catalog"
	"github.com/Elizabethomito/eventboard/internal/seed"
)

// respond writes v as JSON with the given HTTP status code.
func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError sends {"error": msg}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]string{"error": msg})
}

// respondErr maps a catalog error kind to its status and reason string.
func respondErr(w http.ResponseWriter, err error) {
	respondError(w, errorStatus(err), catalog.Reason(err))
}

// errorStatus picks the HTTP status for a catalog error.
//
// LEARNING NOTE: errors.Is walks the Unwrap chain, so a *ValidationError
// (whose Unwrap returns ErrValidation) lands in the 400 case without the
// handlers knowing the concrete type. Capability refusals never reach
// here: handlers check the Capabilities flags themselves and answer 403
// directly, because the catalog's mutations do not know who is asking.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, catalog.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, catalog.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decode reads and parses a JSON request body into v.
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// eventID reads the {id} path value. Ids that are not integers cannot
// name an event, so they are reported as not found.
func eventID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, catalog.ErrNotFound
	}
	return id, nil
}

// Server holds shared dependencies for all handlers.
type Server struct {
	// Catalog is the single state container every handler reads and
	// mutates.
	Catalog *catalog.Catalog
	// Secret signs check-in codes.
	Secret string
	// Seed is what POST /api/admin/reset restores, shifted per SeedAnchor.
	Seed       seed.Data
	SeedAnchor string
	// Host names this deployment in calendar UIDs.
	Host string
	Log  *slog.Logger
}
