// Package web serves the concurrent players chart over HTTP.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
	"github.com/mcdash/playerstats/loader"
	"github.com/safedep/dry/log"
)

const shutdownTimeout = 5 * time.Second

// Loader loads the samples of a preset window.
type Loader interface {
	Load(ctx context.Context, p preset.Preset) loader.Result
}

type Option func(*Server)

func WithTranslator(t *i18n.Translator) Option {
	return func(s *Server) {
		s.translator = t
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *Server) {
		s.location = loc
	}
}

// WithRefreshInterval sets how often the page reloads itself.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Server) {
		s.refresh = d
	}
}

// WithDefaultPreset sets the preset shown when the request names none.
func WithDefaultPreset(id string) Option {
	return func(s *Server) {
		s.defaultPreset = id
	}
}

// Server renders the chart page and its data endpoints.
type Server struct {
	loader        Loader
	translator    *i18n.Translator
	location      *time.Location
	refresh       time.Duration
	defaultPreset string
	handler       http.Handler
}

func NewServer(l Loader, opts ...Option) *Server {
	s := &Server{
		loader:        l,
		location:      time.Local,
		refresh:       loader.DefaultInterval,
		defaultPreset: preset.DefaultID,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.translator == nil {
		s.translator = i18n.MustNew(i18n.DefaultLanguage)
	}
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/chart", s.handleChart)
	r.Get("/api/players/concurrency", s.handleConcurrency)
	r.Get("/healthz", handleHealth)

	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	log.Infof("serving player statistics on http://%s", ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debugf("%s %s %d %s [%s]", r.Method, r.URL.RequestURI(), ww.Status(), time.Since(start),
			chimiddleware.GetReqID(r.Context()))
	})
}
