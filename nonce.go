package wshandshake

import (
	"crypto/rand"
	"encoding/base64"
	"io"
)

// NonceSize is the number of random bytes in a Sec-WebSocket-Key.
const NonceSize = 16

// NonceGenerator produces Sec-WebSocket-Key values from an entropy source.
// It is safe for concurrent use if the source is.
type NonceGenerator struct {
	src io.Reader
}

// NewNonceGenerator returns a generator reading from src.
// A nil src selects crypto/rand.Reader.
func NewNonceGenerator(src io.Reader) *NonceGenerator {
	if src == nil {
		src = rand.Reader
	}
	return &NonceGenerator{src: src}
}

// Generate returns a fresh base64-encoded 16 byte nonce.
func (g *NonceGenerator) Generate() (string, error) {
	var b [NonceSize]byte
	if _, err := io.ReadFull(g.src, b[:]); err != nil {
		return "", &EntropyError{Err: err}
	}
	return base64.StdEncoding.EncodeToString(b[:]), nil
}
