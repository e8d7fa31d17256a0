package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/http/requestutil"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
)

// AdminHandler exposes cache maintenance endpoints guarded by a bearer token.
type AdminHandler struct {
	cache  *cache.Cache
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(c *cache.Cache, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		cache:  c,
		token:  token,
		logger: logger,
	}
}

// FlushCache drops every cached upstream response.
func (h *AdminHandler) FlushCache(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	before := h.cache.Stats(r.Context()).Entries
	if err := h.cache.Flush(r.Context()); err != nil {
		logging.Error(logger, "admin cache flush failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to flush cache", logger)
		return
	}
	logging.Info(logger, "admin cache flushed", slog.Int("entries", before))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"flushed": before,
	}, logger)
}

// CacheStats reports hit, miss, load and eviction counters.
func (h *AdminHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.cache.Stats(r.Context()), loggerFromContext(r, h.logger))
}

func (h *AdminHandler) guard(w http.ResponseWriter, r *http.Request) bool {
	if h.authorize(r) {
		return true
	}
	logging.Warn(h.logger, "admin unauthorized",
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String("client_ip", requestutil.ClientIP(r)),
	)
	writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
	return false
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" || h.cache == nil {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
