package web

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
	"github.com/fr4nk3nst1ner/jobboard/internal/config"
	"github.com/fr4nk3nst1ner/jobboard/internal/render"
)

// Server hosts the job board in the browser
type Server struct {
	cfg      *config.AppConfig
	logger   arbor.ILogger
	html     *render.HTML
	sessions *sessionStore
	server   *http.Server
}

// New wires routes and middleware. boardOpts apply to every session's board.
func New(cfg *config.AppConfig, logger arbor.ILogger, boardOpts ...board.Option) (*Server, error) {
	html, err := render.NewHTML()
	if err != nil {
		return nil, err
	}

	defaultSort := board.ParseSortMode(cfg.Display.DefaultSort)
	opts := append([]board.Option{
		board.WithLogger(logger),
		board.WithMaxBytes(cfg.Board.MaxFileBytes),
		board.WithCollation(cfg.Board.Collation),
	}, boardOpts...)

	s := &Server{
		cfg:    cfg,
		logger: logger,
		html:   html,
		sessions: newSessionStore(cfg.Server.SessionTTL, cfg.Server.MaxSessions, func() *board.Board {
			b := board.New(opts...)
			b.SetSort(defaultSort)
			return b
		}),
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("POST /filters", s.handleFilters)
	mux.HandleFunc("GET /jobs/{index}", s.handleJob)
	mux.HandleFunc("POST /back", s.handleBack)
	mux.HandleFunc("POST /dismiss", s.handleDismiss)

	// Protected API endpoints (require auth if credentials are configured)
	mux.HandleFunc("GET /api/jobs", s.basicAuth(s.handleAPIJobs))

	var handler http.Handler = mux
	handler = s.recoveryMiddleware(handler)
	handler = s.loggingMiddleware(handler)
	return handler
}

// Start listens until Shutdown is called
func (s *Server) Start() error {
	if s.authEnabled() {
		s.logger.Info().
			Str("address", s.server.Addr).
			Msg("Web server listening (API authentication enabled)")
	} else {
		s.logger.Warn().
			Str("address", s.server.Addr).
			Msg("Web server listening (all endpoints public - set WEB_USERNAME/WEB_PASSWORD to protect API)")
	}

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down web server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// authEnabled reports whether both API credentials are configured
func (s *Server) authEnabled() bool {
	return s.cfg.Auth.Username != "" && s.cfg.Auth.Password != ""
}

// basicAuth wraps an http.HandlerFunc with HTTP Basic Authentication
func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	if !s.authEnabled() {
		return next
	}
	username := s.cfg.Auth.Username
	password := s.cfg.Auth.Password

	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()

		// Constant-time comparison
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1

		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="Job Board"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Str("duration", time.Since(start).String()).
			Msg("HTTP request")
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error().
					Str("path", r.URL.Path).
					Str("panic", fmt.Sprint(rec)).
					Msg("Recovered from panic")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
