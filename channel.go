package wshandshake

import (
	"bufio"
	"io"
	"net"
	"slices"
)

// Channel is an upgraded connection in the client role: frames it sends
// must be masked and frames it receives must not be. It carries the
// negotiated subprotocol and extensions but does no framing itself.
type Channel struct {
	conn        net.Conn
	r           io.Reader
	uri         string
	subprotocol string
	extensions  []string
}

// NewChannel binds conn to the request URI and negotiated outcome.
// A nil outcome means nothing was negotiated.
func NewChannel(conn net.Conn, requestURI string, outcome *Outcome) *Channel {
	return newChannel(conn, nil, requestURI, outcome)
}

// newChannel is NewChannel for a conn whose handshake response was read
// through br; bytes br buffered past the response are returned first.
func newChannel(conn net.Conn, br *bufio.Reader, requestURI string, outcome *Outcome) *Channel {
	ch := &Channel{conn: conn, r: conn, uri: requestURI}
	if br != nil && br.Buffered() > 0 {
		ch.r = io.MultiReader(io.LimitReader(br, int64(br.Buffered())), conn)
	}
	if outcome != nil {
		ch.subprotocol = outcome.Subprotocol
		ch.extensions = slices.Clone(outcome.Extensions)
	}
	return ch
}

// Subprotocol returns the negotiated subprotocol, or "" if none.
func (c *Channel) Subprotocol() string { return c.subprotocol }

// Extensions returns the accepted extension names.
func (c *Channel) Extensions() []string { return slices.Clone(c.extensions) }

// RequestURI returns the URI the handshake was made against.
func (c *Channel) RequestURI() string { return c.uri }

// MasksOutgoing reports whether outgoing frames must be masked. Always true.
func (c *Channel) MasksOutgoing() bool { return true }

// ExpectsMaskedIncoming reports whether incoming frames are expected to be
// masked. Always false.
func (c *Channel) ExpectsMaskedIncoming() bool { return false }

// Conn returns the underlying connection.
func (c *Channel) Conn() net.Conn { return c.conn }

// Read reads from the connection, returning bytes buffered during the
// handshake first.
func (c *Channel) Read(p []byte) (int, error) { return c.r.Read(p) }

// Write writes p to the connection as is. Framing is left to the caller.
func (c *Channel) Write(p []byte) (int, error) { return c.conn.Write(p) }

// Close closes the underlying connection.
func (c *Channel) Close() error { return c.conn.Close() }
