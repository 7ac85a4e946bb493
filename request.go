package wshandshake

import "strings"

// RequestBuilder assembles the upgrade request header set.
// It is safe for concurrent use.
type RequestBuilder struct {
	nonces *NonceGenerator
}

// NewRequestBuilder returns a builder drawing keys from nonces.
// A nil generator reads from crypto/rand.
func NewRequestBuilder(nonces *NonceGenerator) *RequestBuilder {
	if nonces == nil {
		nonces = NewNonceGenerator(nil)
	}
	return &RequestBuilder{nonces: nonces}
}

// Build returns the headers for an upgrade request to target. Each call
// generates a fresh key; callers keep it (Header.Get(HeaderSecWebSocketKey))
// to validate the response. offer may be nil.
func (b *RequestBuilder) Build(target string, offer *Offer) (Header, error) {
	if target == "" {
		return nil, ErrEmptyTarget
	}

	key, err := b.nonces.Generate()
	if err != nil {
		return nil, err
	}

	h := Header{
		HeaderUpgrade:             UpgradeValue,
		HeaderConnection:          ConnectionValue,
		HeaderSecWebSocketKey:     key,
		HeaderSecWebSocketVersion: Version,
	}
	if offer == nil {
		return h, nil
	}

	if len(offer.Subprotocols) > 0 {
		h[HeaderSecWebSocketProtocol] = strings.Join(offer.Subprotocols, ", ")
	}
	if len(offer.Extensions) > 0 {
		parts := make([]string, len(offer.Extensions))
		for i, ext := range offer.Extensions {
			parts[i] = ext.String()
		}
		h[HeaderSecWebSocketExts] = strings.Join(parts, ", ")
	}
	return h, nil
}
