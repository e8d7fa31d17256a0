package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/app/favorites"
	appgames "github.com/preston-bernstein/mlb-scoreboard-service/internal/app/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

// Teams returns every MLB team sorted by name.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	list, err := h.svc.Teams.Teams(r.Context())
	if err != nil {
		writeUpstreamError(w, r, err, "Failed to fetch MLB teams", logger)
		return
	}
	writeJSON(w, http.StatusOK, list, logger)
}

// GamesToday returns today's games in the service timezone.
func (h *Handler) GamesToday(w http.ResponseWriter, r *http.Request) {
	h.serveGames(w, r, h.svc.Games.TodayDate())
}

// GamesByDate returns the games played on the {date} URL parameter.
func (h *Handler) GamesByDate(w http.ResponseWriter, r *http.Request) {
	h.serveGames(w, r, chi.URLParam(r, "date"))
}

func (h *Handler) serveGames(w http.ResponseWriter, r *http.Request, date string) {
	logger := loggerFromContext(r, h.logger)
	favs, onlyFavs, ok := h.favoritesQuery(w, r)
	if !ok {
		return
	}
	list, err := h.svc.Games.ByDate(r.Context(), date)
	switch {
	case errors.Is(err, appgames.ErrInvalidDate):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	case err != nil:
		writeUpstreamError(w, r, err, "Failed to fetch MLB games", logger)
		return
	}
	list = arrangeGames(list, favs, onlyFavs)
	logging.Info(logger, "served games",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(list)),
	)
	writeJSON(w, http.StatusOK, list, logger)
}

// GameDetail returns the box score for {gameId}.
func (h *Handler) GameDetail(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	id, err := strconv.Atoi(chi.URLParam(r, "gameId"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid game id", logger)
		return
	}
	detail, err := h.svc.Games.Detail(r.Context(), id)
	switch {
	case providers.IsNotFound(err):
		writeError(w, r, http.StatusNotFound, "Game not found", logger)
		return
	case err != nil:
		writeUpstreamError(w, r, err, "Failed to fetch MLB game details", logger)
		return
	}
	writeJSON(w, http.StatusOK, detail, logger)
}

// TeamGames returns a team's schedule between startDate and endDate.
func (h *Handler) TeamGames(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	teamID, err := strconv.Atoi(chi.URLParam(r, "teamId"))
	if err != nil || teamID <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid team id", logger)
		return
	}
	favs, onlyFavs, ok := h.favoritesQuery(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	list, err := h.svc.Games.TeamSchedule(r.Context(), teamID, strings.TrimSpace(q.Get("startDate")), strings.TrimSpace(q.Get("endDate")))
	switch {
	case errors.Is(err, appgames.ErrInvalidDate), errors.Is(err, appgames.ErrInvalidRange):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	case err != nil:
		writeUpstreamError(w, r, err, "Failed to fetch team schedule", logger)
		return
	}
	writeJSON(w, http.StatusOK, arrangeGames(list, favs, onlyFavs), logger)
}

// Standings returns division standings for the season query parameter.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	season := strings.TrimSpace(r.URL.Query().Get("season"))
	if season != "" && !validSeason(season) {
		writeError(w, r, http.StatusBadRequest, "invalid season", logger)
		return
	}
	records, err := h.svc.Standings.Standings(r.Context(), season)
	if err != nil {
		writeUpstreamError(w, r, err, "Failed to fetch MLB standings", logger)
		return
	}
	writeJSON(w, http.StatusOK, records, logger)
}

// Leaders returns the top players of a statistical category.
func (h *Handler) Leaders(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()
	category := strings.TrimSpace(q.Get("category"))
	if category == "" {
		writeError(w, r, http.StatusBadRequest, "category is required", logger)
		return
	}
	season := strings.TrimSpace(q.Get("season"))
	if season != "" && !validSeason(season) {
		writeError(w, r, http.StatusBadRequest, "invalid season", logger)
		return
	}
	board, err := h.svc.Leaders.Leaders(r.Context(), category, season)
	switch {
	case errors.Is(err, leaders.ErrUnknownCategory):
		writeError(w, r, http.StatusBadRequest, "invalid category: "+category, logger)
		return
	case err != nil:
		writeUpstreamError(w, r, err, "Failed to fetch MLB leaders", logger)
		return
	}
	writeJSON(w, http.StatusOK, board, logger)
}

// favoritesQuery parses favorites=<id,id> and favoritesOnly=true. It writes
// a 400 and returns ok=false for malformed ids.
func (h *Handler) favoritesQuery(w http.ResponseWriter, r *http.Request) (*favorites.Set, bool, bool) {
	q := r.URL.Query()
	raw := strings.TrimSpace(q.Get("favorites"))
	onlyFavs, _ := strconv.ParseBool(q.Get("favoritesOnly"))
	if raw == "" {
		return nil, onlyFavs, true
	}
	ids := make([]int, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid favorites", loggerFromContext(r, h.logger))
			return nil, false, false
		}
		ids = append(ids, id)
	}
	return favorites.FromIDs(ids), onlyFavs, true
}

// arrangeGames applies favorites ordering when favorites were supplied.
// favoritesOnly without favorites yields an empty list.
func arrangeGames(list []games.Game, favs *favorites.Set, onlyFavs bool) []games.Game {
	if onlyFavs {
		list = favorites.FilterFavorites(list, favs)
	}
	if favs == nil {
		return list
	}
	return favorites.Order(list, favs)
}

func validSeason(season string) bool {
	if len(season) != 4 {
		return false
	}
	_, err := strconv.Atoi(season)
	return err == nil
}
