package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SPA serves the built browser client in production and a JSON 404 otherwise.
type SPA struct {
	dir    string
	serve  bool
	logger *slog.Logger
}

// NewSPA returns a catch-all handler. Static files are only served when
// production is true and dir is set.
func NewSPA(dir string, production bool, logger *slog.Logger) *SPA {
	return &SPA{dir: dir, serve: production && dir != "", logger: logger}
}

// ServeHTTP serves the requested file, falling back to index.html so that
// client-side routes resolve. API paths never fall back.
func (s *SPA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, s.logger)
	if !s.serve || strings.HasPrefix(r.URL.Path, "/api/") || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		writeError(w, r, http.StatusNotFound, "API endpoint not found", logger)
		return
	}

	clean := path.Clean("/" + r.URL.Path)
	full := filepath.Join(s.dir, filepath.FromSlash(clean))
	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		http.ServeFile(w, r, full)
		return
	}
	index := filepath.Join(s.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		writeError(w, r, http.StatusNotFound, "API endpoint not found", logger)
		return
	}
	http.ServeFile(w, r, index)
}
