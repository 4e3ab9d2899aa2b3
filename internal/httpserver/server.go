// Package httpserver serves the game as a JSON API.
//
// Each browser plays its own Session, held in memory and evicted after an
// idle TTL. Routes:
//
//	GET    /health
//	POST   /api/sessions
//	GET    /api/sessions/{id}
//	POST   /api/sessions/{id}/answer   {"color":"red"}
//	POST   /api/sessions/{id}/next
//	POST   /api/sessions/{id}/reset
//	DELETE /api/sessions/{id}
//	GET    /api/orientations
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeguess"
	"github.com/SeamusWaldron/cubeguess/internal/config"
	"github.com/SeamusWaldron/cubeguess/internal/store"
)

// game pairs a session with the presenter that records its visible state.
type game struct {
	session *cubeguess.Session
	view    *viewRecorder
}

// Server bundles the router and the in-memory session store.
type Server struct {
	r           *chi.Mux
	sessions    *store.Memory[*game]
	cfg         config.Config
	log         zerolog.Logger
	sessionOpts []cubeguess.Option
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithSessionOptions appends options applied to every new session, after
// those derived from the config.
func WithSessionOptions(opts ...cubeguess.Option) Option {
	return func(s *Server) {
		s.sessionOpts = append(s.sessionOpts, opts...)
	}
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	base, err := cfg.SessionOptions()
	if err != nil {
		return nil, err
	}

	s := &Server{
		r:           chi.NewRouter(),
		cfg:         cfg,
		log:         zerolog.Nop(),
		sessionOpts: base,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sessions = store.NewMemory(store.WithEvictHook(func(id string, g *game) {
		_ = g.session.Close()
		s.log.Debug().Str("session", id).Msg("session removed")
	}))

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(s.requestLogger)
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/orientations", s.handleOrientations)
		r.Post("/sessions", s.handleCreate)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Post("/answer", s.handleAnswer)
			r.Post("/next", s.handleNext)
			r.Post("/reset", s.handleReset)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on the configured address until ctx is done, then
// shuts down gracefully and closes every session.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.sessions.RunJanitor(ctx, sweepInterval(s.cfg.SessionTTL), s.cfg.SessionTTL)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	err := srv.Shutdown(shutdownCtx)
	s.sessions.Sweep(0)
	s.log.Info().Msg("server stopped")
	return err
}

func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	if interval > time.Minute {
		interval = time.Minute
	}
	return interval
}

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single configured origin, or any origin for "*".
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ----------------------------- handlers ------------------------------------

type createReq struct {
	Strategy string  `json:"strategy"`
	Seed     *uint64 `json:"seed"`
}

// handleCreate starts a new session. The body is optional.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	opts := append([]cubeguess.Option{}, s.sessionOpts...)
	if req.Strategy != "" {
		strategy, err := cubeguess.ParseStrategy(req.Strategy)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts = append(opts, cubeguess.WithStrategy(strategy))
	}
	if req.Seed != nil {
		opts = append(opts, cubeguess.WithSeed(*req.Seed))
	}
	opts = append(opts, cubeguess.WithLogger(s.log))

	g := &game{view: newViewRecorder()}
	g.session = cubeguess.NewSession(g.view, opts...)
	if err := g.session.Start(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.sessions.Save(r.Context(), g.session.ID(), g); err != nil {
		s.log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.log.Info().Str("session", g.session.ID()).Stringer("strategy", g.session.Strategy()).Msg("session created")

	writeJSON(w, http.StatusCreated, g.view.snapshot(g.session))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g.view.snapshot(g.session))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type answerReq struct {
	Color string `json:"color"`
}

type answerRes struct {
	Feedback cubeguess.Feedback `json:"feedback"`
	Session  sessionView        `json:"session"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req answerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	color, err := cubeguess.ParseColor(req.Color)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fb, err := g.session.Answer(color)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answerRes{Feedback: fb, Session: g.view.snapshot(g.session)})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*cubeguess.Session).Next)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*cubeguess.Session).Reset)
}

func (s *Server) apply(w http.ResponseWriter, r *http.Request, op func(*cubeguess.Session) error) {
	g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := op(g.session); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g.view.snapshot(g.session))
}

type orientationRes struct {
	Index int                 `json:"index"`
	Faces cubeguess.CubeState `json:"faces"`
	Net   string              `json:"net"`
}

func (s *Server) handleOrientations(w http.ResponseWriter, r *http.Request) {
	states := cubeguess.Orientations()
	out := make([]orientationRes, len(states))
	for i, st := range states {
		out[i] = orientationRes{Index: i, Faces: st, Net: st.String()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*game, bool) {
	g, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return g, true
}

// ------------------------------ responses ----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cubeguess.ErrAwaitingNextRound), errors.Is(err, cubeguess.ErrNotStarted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, cubeguess.ErrUnknownColor):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, cubeguess.ErrSessionClosed):
		writeError(w, http.StatusGone, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
