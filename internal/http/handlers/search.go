package handlers

import (
	"errors"
	"net/http"

	appsearch "github.com/preston-bernstein/mlb-scoreboard-service/internal/app/search"
)

// Search finds teams in the generic sports database by q, optionally within league.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()
	results, err := h.svc.Search.Search(r.Context(), q.Get("q"), q.Get("league"))
	switch {
	case errors.Is(err, appsearch.ErrEmptyQuery):
		writeError(w, r, http.StatusBadRequest, "Search term is required", logger)
		return
	case err != nil:
		writeUpstreamError(w, r, err, "Failed to search teams", logger)
		return
	}
	writeJSON(w, http.StatusOK, results, logger)
}
