package wshandshake

import (
	"crypto/subtle"
	"slices"
	"strings"
)

// ValidateResponse checks the server's upgrade response headers against the
// key that was sent and the client's offer. Checks run in order and the
// first failure is returned; there is no partial acceptance.
//
// On success it returns a new Outcome. Recording it (Negotiation.Commit) is
// up to the caller. With a nil offer no subprotocol or extension is
// negotiated and the Outcome is empty.
func ValidateResponse(sentKey string, offer *Offer, resp Header) (*Outcome, error) {
	if !strings.EqualFold(strings.TrimSpace(resp.Get(HeaderUpgrade)), UpgradeValue) {
		return nil, ErrInvalidUpgradeHeader
	}
	if !strings.EqualFold(strings.TrimSpace(resp.Get(HeaderConnection)), ConnectionValue) {
		return nil, ErrInvalidConnectionHeader
	}

	expected, err := ComputeAcceptKey(sentKey)
	if err != nil {
		return nil, err
	}
	actual, _ := resp.Lookup(HeaderSecWebSocketAccept)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) != 1 {
		return nil, &AcceptKeyMismatchError{Expected: expected, Actual: actual}
	}

	outcome := &Outcome{}
	if offer == nil {
		return outcome, nil
	}

	proto, ok := resp.Lookup(HeaderSecWebSocketProtocol)
	if len(offer.Subprotocols) > 0 || (ok && proto != "") {
		if !offer.hasSubprotocol(proto) {
			return nil, &UnsupportedSubprotocolError{
				Subprotocol: proto,
				Offered:     slices.Clone(offer.Subprotocols),
			}
		}
		outcome.Subprotocol = proto
	}

	if exts := resp.Get(HeaderSecWebSocketExts); strings.TrimSpace(exts) != "" {
		for _, token := range strings.Split(exts, ",") {
			token = strings.TrimSpace(token)
			name := token
			if i := strings.IndexByte(token, ';'); i >= 0 {
				name = strings.TrimSpace(token[:i])
			}
			// Parameters in the response are not compared against the offer.
			if !offer.hasExtension(name) {
				return nil, &UnsupportedExtensionError{
					Extension: token,
					Offered:   offer.ExtensionNames(),
				}
			}
			outcome.Extensions = append(outcome.Extensions, name)
		}
	}

	return outcome, nil
}
