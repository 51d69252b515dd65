// Package api exposes content over HTTP: published records for the site and
// an admin surface for editing them.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/content"
)

// Options configures the server.
type Options struct {
	Addr                 string
	AdminToken           string
	AllowUnauthenticated bool
	CORSOrigin           string // empty means "*"
	ShutdownTimeout      time.Duration
}

// Server is the HTTP API server.
type Server struct {
	opts    Options
	log     *zap.Logger
	handler http.Handler
}

// NewServer builds the router and middleware chain.
func NewServer(svc *content.Service, log *zap.Logger, opts Options) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	s := &Server{opts: opts, log: log}
	s.handler = s.routes(NewHandler(svc, log))
	return s
}

func (s *Server) routes(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.health)
	mux.HandleFunc("GET /api/{kind}", h.listPublished)
	mux.HandleFunc("GET /api/{kind}/{slug}", h.getPublished)

	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireToken(s.opts.AdminToken, s.opts.AllowUnauthenticated, fn))
	}
	admin("GET /api/admin/templates", h.listTemplates)
	admin("GET /api/admin/templates/{slug}", h.previewTemplate)
	admin("GET /api/admin/{kind}", h.listAll)
	admin("POST /api/admin/{kind}", h.create)
	admin("POST /api/admin/{kind}/reorder", h.reorder)
	admin("GET /api/admin/{kind}/{id}", h.getByID)
	admin("PUT /api/admin/{kind}/{id}", h.update)
	admin("DELETE /api/admin/{kind}/{id}", h.remove)

	return Recover(s.log, RequestLog(s.log, CORS(s.opts.CORSOrigin, mux)))
}

// Handler returns the full middleware-wrapped router.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe listens on the configured address until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("api listening", zap.String("addr", ln.Addr().String()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.log.Info("api shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
