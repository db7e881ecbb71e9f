// Package server runs the responder side: one listener, one immutable
// (p, g) pair, one goroutine per accepted connection.
package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"dhx/internal/crypto"
	"dhx/internal/domain"
	"dhx/internal/log"
	"dhx/internal/protocol/handshake"
	"dhx/internal/transport"
)

// Options configures a Server.
type Options struct {
	Addr        string        // listen address, e.g. "127.0.0.1:8080"
	PrimeBits   int           // modulus size for parameter generation
	ReadTimeout time.Duration // per-read deadline on every session
}

// Server owns the listener and the group parameters shared read-only by
// every session. All other session state lives in the session's
// goroutine and dies with it.
type Server struct {
	params      domain.GroupParameters
	listener    net.Listener
	readTimeout time.Duration
	log         log.Logger
	wg          sync.WaitGroup
}

// New generates group parameters at opts.PrimeBits and binds the
// listener. Parameter generation can take a while for large moduli;
// it happens once, before any session is accepted.
func New(opts Options, logger log.Logger) (*Server, error) {
	logger.Infow("generating group parameters", "bits", opts.PrimeBits)
	start := time.Now()
	params, err := crypto.GenerateGroupParameters(opts.PrimeBits)
	if err != nil {
		return nil, fmt.Errorf("generating group parameters: %w", err)
	}
	logger.Infow("group parameters ready",
		"elapsed", time.Since(start),
		"p", crypto.Fingerprint(params.P),
		"g", crypto.Fingerprint(params.G))

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", opts.Addr, err)
	}
	logger.Infow("listening", "addr", ln.Addr().String())

	return &Server{
		params:      params,
		listener:    ln,
		readTimeout: opts.ReadTimeout,
		log:         logger,
	}, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Params returns the shared group parameters.
func (s *Server) Params() domain.GroupParameters {
	return s.params
}

// Serve accepts connections until the listener is closed, spawning one
// goroutine per session. A failed accept is logged and does not stop
// the server; a failed session never does.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Errorw("accept failed", "err", err)
			continue
		}
		s.wg.Add(1)
		go s.handle(conn)
	}
}

// Close stops accepting and waits for in-flight sessions to finish.
func (s *Server) Close() error {
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

// handle runs one session: responder handshake, then the echo loop.
// Everything session-scoped (key pair, peer public value, secret) is
// owned here and wiped on the way out.
func (s *Server) handle(nc net.Conn) {
	defer s.wg.Done()
	defer nc.Close()

	logger := s.log.Named("session").With("peer", nc.RemoteAddr().String())
	logger.Debugw("session started")

	conn := transport.New(nc, s.readTimeout)
	sess, err := handshake.Responder(conn, s.params)
	if err != nil {
		logger.Warnw("handshake aborted", "err", err)
		return
	}
	defer sess.Wipe()

	logger.Infow("shared secret established", "secret", crypto.Fingerprint(sess.Secret))
	s.echo(conn, logger)
	logger.Debugw("session closed")
}

// echo mirrors application bytes back until the peer hangs up. Once the
// handshake is done a read timeout is idle time, not an error.
func (s *Server) echo(conn *transport.Conn, logger log.Logger) {
	buf := make([]byte, 1024)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			if _, werr := conn.Write(buf[:n]); werr != nil {
				logger.Warnw("echo write failed", "err", werr)
				return
			}
			logger.Debugw("echoed", "bytes", n)
		}
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if errors.Is(err, io.EOF) {
				logger.Infow("peer disconnected")
			} else {
				logger.Warnw("read failed", "err", err)
			}
			return
		}
	}
}
