// Package transport wraps a net.Conn with the stream semantics the
// handshake consumes: every read is armed with a deadline so an Await
// state fails with a timeout instead of hanging forever.
package transport

import (
	"net"
	"time"
)

// DefaultReadTimeout bounds how long a single read may block.
const DefaultReadTimeout = 30 * time.Second

// Conn is a net.Conn with a configurable per-read deadline. Writes are
// passed through; net.Conn.Write already pushes the whole buffer.
type Conn struct {
	conn        net.Conn
	readTimeout time.Duration
}

// New wraps c. A non-positive readTimeout falls back to
// DefaultReadTimeout; use SetReadTimeout(0) afterwards to disable
// deadlines entirely.
func New(c net.Conn, readTimeout time.Duration) *Conn {
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	return &Conn{conn: c, readTimeout: readTimeout}
}

// Read arms the deadline and reads from the underlying connection. A
// deadline hit surfaces as a net.Error with Timeout() == true.
func (c *Conn) Read(p []byte) (int, error) {
	if c.readTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return 0, err
		}
	}
	return c.conn.Read(p)
}

// Write pushes p to the underlying connection.
func (c *Conn) Write(p []byte) (int, error) {
	return c.conn.Write(p)
}

// SetReadTimeout changes the per-read deadline; 0 disables it.
func (c *Conn) SetReadTimeout(d time.Duration) {
	c.readTimeout = d
}

// RemoteAddr returns the peer address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}
