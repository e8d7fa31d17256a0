package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/http/middleware"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, map[string]string{"error": message}, logger)
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body map[string]string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeUpstreamError logs the cause and answers 500 with a fixed message.
// The upstream error text never reaches the client.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, message string, logger *slog.Logger) {
	args := []any{slog.String(logging.FieldPath, r.URL.Path)}
	var statusErr *providers.StatusError
	if errors.As(err, &statusErr) {
		args = append(args,
			slog.String(logging.FieldProvider, statusErr.Provider),
			slog.Int("upstream_status", statusErr.StatusCode),
		)
	}
	if rl, ok := providers.AsRateLimitError(err); ok {
		args = append(args,
			slog.String(logging.FieldProvider, rl.Provider),
			slog.Duration("retry_after", rl.RetryAfter),
		)
	}
	logging.Error(logger, message, err, args...)
	writeError(w, r, http.StatusInternalServerError, message, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
