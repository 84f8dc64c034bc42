// Package server exposes the lehmer service over a JSON HTTP API.
//
// Routes:
//
//	GET    /healthz
//	GET    /v1/factorial/{n}
//	POST   /v1/encode                  {"permutation":[3,1,0,2]}
//	GET    /v1/decode/{length}/{code}
//	GET    /v1/orderings
//	GET    /v1/orderings/{name}
//	PUT    /v1/orderings/{name}        {"permutation":[..],"labels":[..]}
//	DELETE /v1/orderings/{name}
//
// Codes are decimal strings on the wire so that lengths beyond int64 are
// representable. Errors are returned as {"code":"...","message":"..."}.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/lehmer/pkg/service"
)

// Defaults for Options fields left zero.
const (
	DefaultMaxLength    = 10000
	DefaultMaxBodyBytes = 1 << 20
	DefaultTimeout      = 10 * time.Second
	shutdownTimeout     = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	// MaxLength bounds permutation lengths and factorial arguments.
	MaxLength    int
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (o *Options) setDefaults() {
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = DefaultTimeout
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultTimeout
	}
}

// Server is the HTTP front end of a service.Runner.
type Server struct {
	runner *service.Runner
	logger *log.Logger
	opts   Options
	router chi.Router
}

// New creates a server. A nil logger uses the runner's logger.
func New(runner *service.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	opts.setDefaults()
	s := &Server{runner: runner, logger: logger, opts: opts}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/factorial/{n}", s.handleFactorial)
		r.Post("/encode", s.handleEncode)
		r.Get("/decode/{length}/{code}", s.handleDecode)

		r.Route("/orderings", func(r chi.Router) {
			r.Get("/", s.handleListOrderings)
			r.Get("/{name}", s.handleGetOrdering)
			r.Put("/{name}", s.handlePutOrdering)
			r.Delete("/{name}", s.handleDeleteOrdering)
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Code: "METHOD_NOT_ALLOWED", Message: r.Method + " not allowed"})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
