package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Pinger reports whether a backing resource is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler reports the service status, checking the database.
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status, resp := http.StatusOK, healthResponse{Status: "ok", Message: "Consorcio API is running"}
		if err := db.Ping(ctx); err != nil {
			slog.Error("Health check failed", "error", err)
			status, resp = http.StatusServiceUnavailable, healthResponse{Status: "error", Message: "database unavailable"}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("Failed to write health response", "error", err)
		}
	}
}
