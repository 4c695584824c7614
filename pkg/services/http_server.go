package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"
)

const (
	maxConcurrentConns = 256
	shutdownTimeout    = 10 * time.Second
)

type httpServer struct {
	addr    string
	handler http.Handler
}

func NewHTTPServer(port int, handler http.Handler) (*httpServer, error) {
	if handler == nil {
		return nil, errors.New("handler cannot be nil")
	}
	return &httpServer{
		addr:    fmt.Sprintf(":%d", port),
		handler: handler,
	}, nil
}

func (s *httpServer) Name() string { return "http server" }

func (s *httpServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	ln = netutil.LimitListener(ln, maxConcurrentConns)

	srv := &http.Server{Handler: s.handler}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
