package wshandshake

import (
	"crypto/tls"
	"io"
	"log/slog"
	"net"
	"net/http"
)

// DialOption configures a Dialer.
type DialOption func(*dialConfig)

type dialConfig struct {
	logger     *slog.Logger
	entropy    io.Reader
	tlsConfig  *tls.Config
	netDialer  *net.Dialer
	header     http.Header
	onComplete func(subprotocol string, extensions []string)
}

// WithLogger sets a structured logger for handshake attempts.
func WithLogger(logger *slog.Logger) DialOption {
	return func(c *dialConfig) {
		c.logger = logger
	}
}

// WithEntropy sets the source of nonce bytes. It must be safe for
// concurrent use when the Dialer is shared. Defaults to crypto/rand.Reader.
func WithEntropy(src io.Reader) DialOption {
	return func(c *dialConfig) {
		c.entropy = src
	}
}

// WithTLSConfig sets the TLS configuration used for wss URLs.
func WithTLSConfig(cfg *tls.Config) DialOption {
	return func(c *dialConfig) {
		c.tlsConfig = cfg
	}
}

// WithNetDialer sets the dialer used to open TCP connections.
func WithNetDialer(d *net.Dialer) DialOption {
	return func(c *dialConfig) {
		c.netDialer = d
	}
}

// WithHeader adds headers to the upgrade request, such as Origin or
// Authorization. Handshake headers always take precedence.
func WithHeader(h http.Header) DialOption {
	return func(c *dialConfig) {
		c.header = h.Clone()
	}
}

// WithOnComplete sets a callback invoked once per successful handshake with
// the negotiated subprotocol and accepted extensions.
func WithOnComplete(fn func(subprotocol string, extensions []string)) DialOption {
	return func(c *dialConfig) {
		c.onComplete = fn
	}
}
