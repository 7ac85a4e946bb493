package wshandshake

import (
	"crypto"
	_ "crypto/sha1" // registers crypto.SHA1
	"encoding/base64"
)

// ComputeAcceptKey derives the Sec-WebSocket-Accept value a server must
// return for nonce. The nonce is used exactly as sent.
func ComputeAcceptKey(nonce string) (string, error) {
	return computeAcceptKey(crypto.SHA1, nonce)
}

func computeAcceptKey(alg crypto.Hash, nonce string) (string, error) {
	if !alg.Available() {
		return "", ErrDigestUnavailable
	}
	h := alg.New()
	h.Write([]byte(nonce + MagicGUID))
	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}
