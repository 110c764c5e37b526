// Package handlers implements the HTTP API over the per-user session store.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/CODINGDONG1211/Lifestyleapp/middleware"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
)

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// session resolves the caller's state session from the authenticated user
// id on the request context. Writes the error response itself when it
// cannot; callers just return on ok=false.
func session(m *store.Manager, logger *slog.Logger, w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	s, err := m.Session(strconv.Itoa(uid))
	if err != nil {
		logger.Error("failed to open session", "user", uid, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}
