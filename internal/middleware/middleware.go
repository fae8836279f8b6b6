// Package middleware provides HTTP middleware for the event board server.
//
// Middleware here follows the usual shape:
//
//	func(next http.Handler) http.Handler
//
// and chains outside-in: CORS(Logger(mux)) runs CORS first.
package middleware

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Elizabethomito/eventboard/internal/models"
)

// contextKey is a private type for context keys in this package.
type contextKey string

const (
	// ContextUser holds the session user after RequireSession runs.
	ContextUser contextKey = "user"
	// ContextRequestID holds the id assigned by Logger.
	ContextRequestID contextKey = "request_id"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// SessionSource exposes the current session. The catalog satisfies it.
type SessionSource interface {
	CurrentUser() (models.User, bool)
}

// RequireSession rejects requests with 401 while nobody is logged in and
// stores the session user in the request context otherwise.
func RequireSession(src SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := src.CurrentUser()
			if !ok {
				http.Error(w, `{"error":"please log in"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ContextUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole only lets through requests whose session user has one of
// roles. Must be used after RequireSession.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := GetUser(r.Context())
			if !ok || !slices.Contains(roles, u.Role) {
				http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORS allows the listed origins ("*" for any) to call the API from a
// browser. OPTIONS preflights are answered with 204.
func CORS(origins []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(origins, "*")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case wildcard:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(origins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AllowOrigin reports whether origin passes the CORS list. Websocket
// upgrades reuse it as their origin check.
func AllowOrigin(origins []string) func(string) bool {
	return func(origin string) bool {
		return origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin)
	}
}

// Logger tags each request with an id and writes one access log line
// when the handler returns.
func Logger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			ctx := context.WithValue(r.Context(), ContextRequestID, id)
			next.ServeHTTP(rec, r.WithContext(ctx))

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.Log(r.Context(), level, "request",
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// statusRecorder remembers the status code written by the handler.
//
// LEARNING NOTE: wrapping a ResponseWriter hides its optional interfaces.
// net/http hands handlers a value that also implements http.Hijacker and
// http.Flusher, but a struct embedding http.ResponseWriter only promotes
// the three methods of that interface. The websocket upgrader type-asserts
// for http.Hijacker, so without the Hijack method below every upgrade
// behind Logger would fail with "response does not implement
// http.Hijacker". Unwrap lets http.ResponseController find the original
// writer for the rest.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// Hijack lets websocket upgrades through the recorder.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	s.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// GetUser retrieves the session user stored by RequireSession.
func GetUser(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(ContextUser).(models.User)
	return u, ok
}

// GetRequestID retrieves the id assigned by Logger.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextRequestID).(string)
	return id
}
