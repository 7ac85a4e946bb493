package wshandshake

import (
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Header maps header names to single values.
//
// Outgoing headers keep the exact spelling they were set with, so
// Sec-WebSocket-Key is not rewritten to Go's Sec-Websocket-Key. Lookups
// with Get ignore case. Names should be unique ignoring case; when they are
// not, a lookup that has no exact match picks the lowest name in byte order.
type Header map[string]string

// Get returns the value for name, matching names case-insensitively.
func (h Header) Get(name string) string {
	v, _ := h.Lookup(name)
	return v
}

// Lookup is like Get but reports whether the header was present.
func (h Header) Lookup(name string) (string, bool) {
	if v, ok := h[name]; ok {
		return v, true
	}
	var (
		match string
		found bool
	)
	for k := range h {
		if strings.EqualFold(k, name) && (!found || k < match) {
			match, found = k, true
		}
	}
	if !found {
		return "", false
	}
	return h[match], true
}

// HTTPHeader converts h to an http.Header without canonicalizing names.
func (h Header) HTTPHeader() http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		out[k] = []string{v}
	}
	return out
}

// HeaderFromHTTP flattens a received http.Header, lowercasing names.
// Repeated values are joined with ", ".
func HeaderFromHTTP(hdr http.Header) Header {
	out := make(Header, len(hdr))
	for _, k := range slices.Sorted(maps.Keys(hdr)) {
		vs := hdr[k]
		key := strings.ToLower(k)
		if prev, ok := out[key]; ok {
			vs = append([]string{prev}, vs...)
		}
		out[key] = strings.Join(vs, ", ")
	}
	return out
}
