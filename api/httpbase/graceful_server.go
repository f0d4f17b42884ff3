package httpbase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// GracefulServer implements an HTTP server with graceful shutdown.
type GracefulServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

type GraceServerOpt struct {
	Port int
	// how long in-flight sends may take once a stop signal arrived
	ShutdownTimeout time.Duration
}

// NewGracefulServer returns a server with graceful shutdown
func NewGracefulServer(opt GraceServerOpt, handler http.Handler) *GracefulServer {
	if opt.ShutdownTimeout <= 0 {
		opt.ShutdownTimeout = 5 * time.Second
	}
	return &GracefulServer{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", opt.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: opt.ShutdownTimeout,
	}
}

// Run starts the http server and blocks until ctx is done or SIGINT/SIGTERM is received.
func (s *GracefulServer) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("listen failed", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down gracefully, press Ctrl+C again to force")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server failed to shutdown", slog.Any("error", err))
		return err
	}
	slog.Info("server stopped")
	return nil
}
