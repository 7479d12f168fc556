package protocol

import (
	"context"
	"errors"
	"net"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-registry/internal/protocol/metrics"
)

// DefaultMaxRequestBytes is the per-connection read buffer size when the
// configuration does not override it. One read = one request; there is no
// further framing.
const DefaultMaxRequestBytes = 1024

// Server accepts TCP connections and services each on its own goroutine:
// exactly one read, one dispatch, one write, then the connection closes.
// Transport failures terminate only the affected connection; registry state
// and other connections are never touched.
type Server struct {
	addr            string
	maxRequestBytes int
	dispatcher      *Dispatcher
	logger          zerolog.Logger
}

func NewServer(addr string, maxRequestBytes int, dispatcher *Dispatcher, logger zerolog.Logger) *Server {
	if maxRequestBytes <= 0 {
		maxRequestBytes = DefaultMaxRequestBytes
	}
	return &Server{
		addr:            addr,
		maxRequestBytes: maxRequestBytes,
		dispatcher:      dispatcher,
		logger:          logger,
	}
}

// ListenAndServe binds the listen address and runs the accept loop until ctx
// is cancelled. It blocks; run it on its own goroutine.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve runs the accept loop on an existing listener. Exposed separately so
// tests can bind to port 0 and read back the chosen address.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")

	// Unblock Accept when the context ends.
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error().Err(err).Msg("accept failed")
			continue
		}
		metrics.ConnectionsTotal.Inc()
		go s.handleConn(ctx, conn)
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, s.maxRequestBytes)
	n, err := conn.Read(buf)
	if err != nil {
		metrics.ConnectionErrorsTotal.WithLabelValues("read").Inc()
		s.logger.Error().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("failed to read from socket")
		return
	}
	if n == 0 {
		return
	}

	response := s.dispatcher.Dispatch(ctx, string(buf[:n]))

	if _, err := conn.Write([]byte(response)); err != nil {
		metrics.ConnectionErrorsTotal.WithLabelValues("write").Inc()
		s.logger.Error().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("failed to send response")
	}
}
