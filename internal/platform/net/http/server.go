package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"piptrade/internal/platform/config"
	"piptrade/internal/platform/logger"
)

const (
	// DefaultPort is the listen port when PORT is unset
	DefaultPort = 6000
	// DefaultGrace bounds in-flight requests on shutdown
	DefaultGrace = 10 * time.Second
)

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server
}

// ServerOption customizes a Server before it starts
type ServerOption func(*Server)

// WithAddr overrides the listen address, e.g. "127.0.0.1:0" in tests
func WithAddr(addr string) ServerOption { return func(s *Server) { s.addr = addr } }

// WithGrace overrides DefaultGrace, non-positive values are ignored
func WithGrace(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.grace = d
		}
	}
}

// NewServer builds a server listening on PORT (default 6000)
func NewServer(cfg config.Conf, opts ...ServerOption) *Server {
	s := &Server{
		addr:  cfg.MayPort("PORT", DefaultPort),
		grace: DefaultGrace,
		mux:   chi.NewRouter(),
	}
	for _, o := range opts {
		o(s)
	}
	s.srv = &stdhttp.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler exposes the root handler, handy for httptest
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr returns the listening address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is cancelled or the listener fails
// On cancellation in-flight requests get the grace period to finish.
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
