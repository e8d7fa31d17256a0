package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gorilla/websocket"

	appgames "github.com/preston-bernstein/mlb-scoreboard-service/internal/app/games"
	appleaders "github.com/preston-bernstein/mlb-scoreboard-service/internal/app/leaders"
	appscores "github.com/preston-bernstein/mlb-scoreboard-service/internal/app/scores"
	appsearch "github.com/preston-bernstein/mlb-scoreboard-service/internal/app/search"
	appstandings "github.com/preston-bernstein/mlb-scoreboard-service/internal/app/standings"
	appteams "github.com/preston-bernstein/mlb-scoreboard-service/internal/app/teams"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/poller"
)

const defaultPushInterval = 30 * time.Second

// Services groups the application services the handlers call into.
type Services struct {
	Teams     *appteams.Service
	Games     *appgames.Service
	Standings *appstandings.Service
	Leaders   *appleaders.Service
	Search    *appsearch.Service
	Scores    *appscores.Service
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	svc          Services
	logger       *slog.Logger
	statusFn     func() poller.Status
	validate     *validator.Validate
	pushInterval time.Duration
	upgrader     websocket.Upgrader
}

// Option customizes a Handler.
type Option func(*Handler)

// WithPushInterval sets how often device websocket clients receive scores.
func WithPushInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.pushInterval = d
		}
	}
}

// WithAllowedOrigins restricts websocket upgrades to the listed origins.
// "*" or an empty list accepts any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = originChecker(origins)
	}
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() poller.Status, opts ...Option) *Handler {
	h := &Handler{
		svc:          svc,
		logger:       logger,
		statusFn:     statusFn,
		validate:     newValidator(),
		pushInterval: defaultPushInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(nil),
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Only fails on a malformed tag name.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the refresher's recent cycles.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

func originChecker(origins []string) func(*http.Request) bool {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = struct{}{}
	}
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}
