// Package client runs the initiator side: dial a responder, complete
// the key exchange, then optionally relay application bytes.
package client

import (
	"fmt"
	"net"
	"time"

	"dhx/internal/crypto"
	"dhx/internal/domain"
	"dhx/internal/log"
	"dhx/internal/protocol/handshake"
	"dhx/internal/transport"
)

// Client is one established exchange with a responder.
type Client struct {
	conn *transport.Conn
	sess *domain.Session
	log  log.Logger
}

// Dial connects to addr and completes the initiator handshake before
// returning; a Client is never handed out without a shared secret.
func Dial(addr string, readTimeout time.Duration, logger log.Logger) (*Client, error) {
	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	conn := transport.New(nc, readTimeout)

	sess, err := handshake.Initiator(conn)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("key exchange with %s: %w", addr, err)
	}
	logger.Infow("shared secret established",
		"peer", addr,
		"secret", crypto.Fingerprint(sess.Secret))

	return &Client{conn: conn, sess: sess, log: logger}, nil
}

// Session exposes the established session state.
func (c *Client) Session() *domain.Session {
	return c.sess
}

// SecretFingerprint returns a printable digest of the session secret.
func (c *Client) SecretFingerprint() string {
	return crypto.Fingerprint(c.sess.Secret)
}

// Send writes application bytes to the responder.
func (c *Client) Send(p []byte) error {
	_, err := c.conn.Write(p)
	return err
}

// Receive reads the next chunk echoed by the responder.
func (c *Client) Receive(p []byte) (int, error) {
	return c.conn.Read(p)
}

// Close wipes the session secrets and closes the connection.
func (c *Client) Close() error {
	c.sess.Wipe()
	return c.conn.Close()
}
