package wshandshake

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions.
var (
	ErrInvalidUpgradeHeader    = errors.New("wshandshake: missing or invalid Upgrade header")
	ErrInvalidConnectionHeader = errors.New("wshandshake: missing or invalid Connection header")
	ErrDigestUnavailable       = errors.New("wshandshake: SHA-1 digest unavailable")
	ErrAlreadyCommitted        = errors.New("wshandshake: negotiation already committed")
	ErrEmptyTarget             = errors.New("wshandshake: empty target URI")
	ErrBadScheme               = errors.New("wshandshake: unsupported URL scheme")
	ErrMalformedExtensions     = errors.New("wshandshake: malformed extensions header")
)

// AcceptKeyMismatchError is returned when Sec-WebSocket-Accept does not
// match the value derived from the sent key.
type AcceptKeyMismatchError struct {
	Expected string
	Actual   string
}

func (e *AcceptKeyMismatchError) Error() string {
	return fmt.Sprintf("wshandshake: accept key mismatch: expected %q, got %q", e.Expected, e.Actual)
}

// UnsupportedSubprotocolError is returned when the server selects a
// subprotocol the client did not offer.
type UnsupportedSubprotocolError struct {
	Subprotocol string
	Offered     []string
}

func (e *UnsupportedSubprotocolError) Error() string {
	return fmt.Sprintf("wshandshake: unsupported subprotocol %q, offered [%s]",
		e.Subprotocol, strings.Join(e.Offered, ", "))
}

// UnsupportedExtensionError is returned when the server accepts an
// extension the client did not offer.
type UnsupportedExtensionError struct {
	Extension string
	Offered   []string
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("wshandshake: unsupported extension %q, offered [%s]",
		e.Extension, strings.Join(e.Offered, ", "))
}

// EntropyError represents a failure to read nonce bytes from the entropy source.
type EntropyError struct {
	Err error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("wshandshake: read entropy: %v", e.Err)
}

func (e *EntropyError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the server answers the upgrade request with
// anything other than 101 Switching Protocols.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("wshandshake: unexpected status %s", e.Status)
	}
	return fmt.Sprintf("wshandshake: unexpected status %d", e.Code)
}

// HandshakeError represents a failure at one step of a dial attempt.
type HandshakeError struct {
	Op  string
	URL string
	Err error
}

func (e *HandshakeError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("wshandshake: %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("wshandshake: %s: %v", e.Op, e.Err)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}
