package handler

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/studioform/backend/internal/model"
)

// healthPath is exempt from origin checks so load balancers and uptime
// monitors can probe it without CORS ceremony.
const healthPath = "/api/health"

// Handler carries the cross-cutting HTTP configuration.
type Handler struct {
	allowedOrigins []string
	environment    string
}

// New creates a Handler allowing the given CORS origins.
func New(allowedOrigins []string, environment string) *Handler {
	return &Handler{allowedOrigins: allowedOrigins, environment: environment}
}

// CORS enforces the origin allow-list. Requests without an Origin header
// (health checks, curl, server-to-server) always pass. The health endpoint
// gets permissive headers regardless of origin.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthPath {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		origin := r.Header.Get("Origin")
		if origin != "" {
			if !slices.Contains(h.allowedOrigins, origin) {
				writeJSON(w, http.StatusForbidden, model.SubmissionResult{
					Success: false,
					Message: "CORS policy violation",
				})
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NotFound is the JSON fallback for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, model.SubmissionResult{
		Success: false,
		Message: "Route not found",
	})
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
