package wshandshake

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Dialer opens connections and performs the opening handshake over them.
// It is safe for concurrent use.
type Dialer struct {
	cfg     dialConfig
	builder *RequestBuilder
}

// NewDialer returns a Dialer configured by opts.
func NewDialer(opts ...DialOption) *Dialer {
	cfg := dialConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.netDialer == nil {
		cfg.netDialer = &net.Dialer{}
	}

	return &Dialer{
		cfg:     cfg,
		builder: NewRequestBuilder(NewNonceGenerator(cfg.entropy)),
	}
}

// Dial connects to a ws or wss URL and performs one handshake attempt.
// offer may be nil. Failures are returned as *HandshakeError.
func Dial(ctx context.Context, rawURL string, offer *Offer, opts ...DialOption) (*Channel, error) {
	return NewDialer(opts...).Dial(ctx, rawURL, offer)
}

// Dial connects to rawURL and performs one handshake attempt.
// The context bounds both the connect and the handshake.
func (d *Dialer) Dial(ctx context.Context, rawURL string, offer *Offer) (*Channel, error) {
	u, addr, err := parseURL(rawURL)
	if err != nil {
		return nil, &HandshakeError{Op: "parse", URL: rawURL, Err: err}
	}

	attempt := uuid.New().String()
	if d.cfg.logger != nil {
		d.cfg.logger.Debug("dialing",
			slog.String("attempt", attempt),
			slog.String("url", rawURL),
			slog.String("addr", addr),
		)
	}

	conn, err := d.cfg.netDialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &HandshakeError{Op: "dial", URL: rawURL, Err: err}
	}

	if u.Scheme == "https" {
		cfg := &tls.Config{}
		if d.cfg.tlsConfig != nil {
			cfg = d.cfg.tlsConfig.Clone()
		}
		if cfg.ServerName == "" {
			cfg.ServerName = u.Hostname()
		}
		tlsConn := tls.Client(conn, cfg)
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, &HandshakeError{Op: "dial", URL: rawURL, Err: err}
		}
		conn = tlsConn
	}

	ch, err := d.handshake(ctx, conn, u, rawURL, offer)
	if err != nil {
		conn.Close()
		if d.cfg.logger != nil {
			d.cfg.logger.Warn("handshake failed",
				slog.String("attempt", attempt),
				slog.String("url", rawURL),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	if d.cfg.logger != nil {
		d.cfg.logger.Debug("handshake complete",
			slog.String("attempt", attempt),
			slog.String("url", rawURL),
			slog.String("subprotocol", ch.Subprotocol()),
			slog.Any("extensions", ch.Extensions()),
		)
	}
	return ch, nil
}

// handshake sends the upgrade request over conn and validates the reply.
func (d *Dialer) handshake(ctx context.Context, conn net.Conn, u *url.URL, rawURL string, offer *Offer) (*Channel, error) {
	if dl, ok := ctx.Deadline(); ok {
		conn.SetDeadline(dl)
	}
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	fail := func(op string, err error) (*Channel, error) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &HandshakeError{Op: op, URL: rawURL, Err: err}
	}

	hdr, err := d.builder.Build(rawURL, offer)
	if err != nil {
		return fail("build", err)
	}
	key := hdr.Get(HeaderSecWebSocketKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fail("build", err)
	}
	for k, vs := range d.cfg.header {
		if _, ok := hdr.Lookup(k); ok {
			continue
		}
		req.Header[k] = vs
	}
	for k, vs := range hdr.HTTPHeader() {
		req.Header[k] = vs
	}

	if err := req.Write(conn); err != nil {
		return fail("write", err)
	}

	br := bufio.NewReader(conn)
	resp, err := http.ReadResponse(br, req)
	if err != nil {
		return fail("read", err)
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		resp.Body.Close()
		return fail("validate", &StatusError{Code: resp.StatusCode, Status: resp.Status})
	}

	if !stop() {
		return fail("read", ctx.Err())
	}
	conn.SetDeadline(time.Time{})

	outcome, err := ValidateResponse(key, offer, HeaderFromHTTP(resp.Header))
	if err != nil {
		return fail("validate", err)
	}
	if err := NewNegotiation(offer, d.cfg.onComplete).Commit(outcome); err != nil {
		return fail("validate", err)
	}

	return newChannel(conn, br, rawURL, outcome), nil
}

// parseURL maps ws/wss onto http/https and returns the dial address.
func parseURL(rawURL string) (*url.URL, string, error) {
	if rawURL == "" {
		return nil, "", ErrEmptyTarget
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", err
	}

	var port string
	switch u.Scheme {
	case "ws", "http":
		u.Scheme, port = "http", "80"
	case "wss", "https":
		u.Scheme, port = "https", "443"
	default:
		return nil, "", fmt.Errorf("%w %q", ErrBadScheme, u.Scheme)
	}
	if u.Host == "" {
		return nil, "", ErrEmptyTarget
	}

	addr := u.Host
	if u.Port() == "" {
		addr = net.JoinHostPort(u.Hostname(), port)
	}
	return u, addr, nil
}
