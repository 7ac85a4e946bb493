package wshandshake

import (
	"strings"

	"github.com/gobwas/httphead"
)

// ParseExtensions parses a Sec-WebSocket-Extensions style list such as
// "permessage-deflate; client_max_window_bits=10, x-custom" into
// extensions, keeping both list and parameter order.
func ParseExtensions(s string) ([]Extension, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	opts, ok := httphead.ParseOptions([]byte(s), nil)
	if !ok || len(opts) == 0 {
		return nil, ErrMalformedExtensions
	}

	exts := make([]Extension, 0, len(opts))
	for i := range opts {
		ext := Extension{Name: string(opts[i].Name)}
		opts[i].Parameters.ForEach(func(k, v []byte) bool {
			ext.Params = append(ext.Params, ExtensionParam{Name: string(k), Value: string(v)})
			return true
		})
		exts = append(exts, ext)
	}
	return exts, nil
}
