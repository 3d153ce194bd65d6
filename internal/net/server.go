package net

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// SharePath is where viewers connect.
const SharePath = "/ws"

// Server exposes a Hub over HTTP.
type Server struct {
	hub      *Hub
	http     *http.Server
	listener net.Listener
}

// Listen binds addr and prepares the share server. Use port 0 in tests.
func Listen(addr string, hub *Hub) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle(SharePath, hub)
	return &Server{
		hub:      hub,
		listener: l,
		http:     &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
	}, nil
}

// Addr is the bound address.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// Port is the bound TCP port.
func (s *Server) Port() int { return s.listener.Addr().(*net.TCPAddr).Port }

// Serve blocks until ctx is done or the listener fails.
func (s *Server) Serve(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() { errc <- s.http.Serve(s.listener) }()
	select {
	case <-ctx.Done():
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
