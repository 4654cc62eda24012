package scoreboard

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/openswim/swimtopia-export/internal/logger"
	"github.com/openswim/swimtopia-export/models"
)

// Handler serves the scoreboard over HTTP from a Refresher's latest build.
type Handler struct {
	refresher *Refresher
	mode      string
	refresh   time.Duration
	tmpl      *template.Template
	logger    zerolog.Logger
}

func NewHandler(refresher *Refresher, mode string, refresh time.Duration, log zerolog.Logger) *Handler {
	return &Handler{
		refresher: refresher,
		mode:      mode,
		refresh:   refresh,
		tmpl:      template.Must(template.New("scoreboard").Parse(scoreboardTemplate)),
		logger:    log.With().Str("component", "scoreboard-server").Logger(),
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/", h.scoreboardPage)
	router.Get("/scoreboard.json", h.scoreboardJSON)
	router.Get("/healthz", h.health)

	return router
}

// scoreboardView is what the HTML template renders: the board plus page
// chrome the models layer has no business knowing about.
type scoreboardView struct {
	models.Scoreboard
	Mode           string
	RefreshSeconds int
}

func (h *Handler) scoreboardPage(w http.ResponseWriter, r *http.Request) {
	board, ok := h.refresher.Current()
	if !ok {
		h.renderError(w)
		return
	}

	view := scoreboardView{
		Scoreboard:     board,
		Mode:           h.mode,
		RefreshSeconds: int(h.refresh.Seconds()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, view); err != nil {
		h.logger.Error().Err(err).Msg("template render failed")
	}
}

func (h *Handler) scoreboardJSON(w http.ResponseWriter, r *http.Request) {
	board, ok := h.refresher.Current()
	if !ok {
		h.writeUnavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(board); err != nil {
		h.logger.Error().Err(err).Msg("json encode failed")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.LastError(); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) renderError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	msg := "<h1>Scoreboard Unavailable</h1><p>No data has been loaded yet.</p>"
	if err := h.refresher.LastError(); err != nil {
		msg = "<h1>Error Loading Scoreboard</h1><p>" + template.HTMLEscapeString(err.Error()) + "</p>"
	}
	_, _ = w.Write([]byte(msg))
}

func (h *Handler) writeUnavailable(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	body := map[string]string{"error": "scoreboard not loaded"}
	if err := h.refresher.LastError(); err != nil {
		body["error"] = err.Error()
	}
	_ = json.NewEncoder(w).Encode(body)
}

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(h.logger.WithContext(r.Context()))
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
