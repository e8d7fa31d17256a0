package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
)

const (
	maxScoresBody = 64 << 10

	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
	wsReadLimit  = 512
)

type scoresRequest struct {
	Teams []scoresTeam `json:"teams" validate:"required,min=1,dive"`
}

type scoresTeam struct {
	ID   string `json:"id" validate:"required,notblank"`
	Name string `json:"name,omitempty"`
}

// Scores aggregates recent and upcoming events for the posted teams.
// Teams that fail upstream are skipped.
func (h *Handler) Scores(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req scoresRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxScoresBody))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "Teams array is required", logger)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Teams array is required", logger)
		return
	}

	ids := make([]string, 0, len(req.Teams))
	for _, t := range req.Teams {
		ids = append(ids, strings.TrimSpace(t.ID))
	}
	list := h.svc.Scores.Scores(r.Context(), ids)
	logging.Info(logger, "served scores",
		slog.Int("teams", len(ids)),
		slog.Int(logging.FieldCount, len(list)),
	)
	writeJSON(w, http.StatusOK, list, logger)
}

// DeviceScores serves compact scores from cache only, for embedded clients.
func (h *Handler) DeviceScores(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	ids, ok := deviceTeamIDs(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "Team IDs required", logger)
		return
	}
	list, err := h.svc.Scores.Device(r.Context(), ids)
	switch {
	case errors.Is(err, scores.ErrNoCachedScores):
		writeErrorBody(w, r, http.StatusNotFound, map[string]string{
			"error":   "No cached scores available",
			"message": "Please fetch scores via the frontend first",
		}, logger)
		return
	case err != nil:
		writeUpstreamError(w, r, err, "Failed to fetch scores", logger)
		return
	}
	writeJSON(w, http.StatusOK, list, logger)
}

// deviceMessage is one websocket push. Scores is empty and Error set when
// nothing is cached yet.
type deviceMessage struct {
	Scores []scores.DeviceScore `json:"scores"`
	Error  string               `json:"error,omitempty"`
	SentAt time.Time            `json:"sentAt"`
}

// DeviceScoresWS upgrades to a websocket and pushes cached device scores on
// connect and then every push interval until either side closes.
func (h *Handler) DeviceScoresWS(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	ids, ok := deviceTeamIDs(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "Team IDs required", logger)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(logger, "websocket upgrade failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()
	go readPump(conn, cancel)

	logging.Info(logger, "device stream opened", slog.Int("teams", len(ids)))
	h.writePump(ctx, conn, ids, logger)
	logging.Info(logger, "device stream closed")
}

// readPump drains client frames so pongs and close frames are processed.
func readPump(conn *websocket.Conn, done context.CancelFunc) {
	defer done()
	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, ids []string, logger *slog.Logger) {
	push := time.NewTicker(h.pushInterval)
	ping := time.NewTicker(wsPingPeriod)
	defer func() {
		push.Stop()
		ping.Stop()
		_ = conn.Close()
	}()

	if !h.pushScores(ctx, conn, ids, logger) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-push.C:
			if !h.pushScores(ctx, conn, ids, logger) {
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) pushScores(ctx context.Context, conn *websocket.Conn, ids []string, logger *slog.Logger) bool {
	msg := deviceMessage{Scores: []scores.DeviceScore{}, SentAt: time.Now().UTC()}
	list, err := h.svc.Scores.Device(ctx, ids)
	switch {
	case errors.Is(err, scores.ErrNoCachedScores):
		msg.Error = "No cached scores available"
	case err != nil:
		msg.Error = "Failed to fetch scores"
	default:
		msg.Scores = list
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(msg); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			logging.Warn(logger, "device stream write failed", "error", err)
		}
		return false
	}
	return true
}

func deviceTeamIDs(r *http.Request) ([]string, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("teams"))
	if raw == "" {
		return nil, false
	}
	ids := make([]string, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids, len(ids) > 0
}
