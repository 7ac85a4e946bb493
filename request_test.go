package wshandshake

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuilder_NoOffer(t *testing.T) {
	b := NewRequestBuilder(nil)

	h, err := b.Build("ws://example.com/chat", nil)
	require.NoError(t, err)

	assert.Len(t, h, 4)
	assert.Equal(t, "websocket", h["Upgrade"])
	assert.Equal(t, "upgrade", h["Connection"])
	assert.Equal(t, "13", h["Sec-WebSocket-Version"])
	assert.NotEmpty(t, h["Sec-WebSocket-Key"])
}

func TestRequestBuilder_FreshKeyPerBuild(t *testing.T) {
	b := NewRequestBuilder(nil)

	h1, err := b.Build("ws://example.com/", nil)
	require.NoError(t, err)
	h2, err := b.Build("ws://example.com/", nil)
	require.NoError(t, err)

	assert.NotEqual(t, h1.Get(HeaderSecWebSocketKey), h2.Get(HeaderSecWebSocketKey))
}

func TestRequestBuilder_InjectedEntropy(t *testing.T) {
	b := NewRequestBuilder(NewNonceGenerator(bytes.NewReader([]byte("the sample nonce"))))

	h, err := b.Build("ws://server.example.com/chat", nil)
	require.NoError(t, err)
	assert.Equal(t, "dGhlIHNhbXBsZSBub25jZQ==", h.Get(HeaderSecWebSocketKey))
}

func TestRequestBuilder_Offer(t *testing.T) {
	tests := []struct {
		name      string
		offer     *Offer
		wantProto string
		wantExts  string
	}{
		{
			name:  "empty offer",
			offer: &Offer{},
		},
		{
			name:      "subprotocols keep order",
			offer:     &Offer{Subprotocols: []string{"superchat", "chat"}},
			wantProto: "superchat, chat",
		},
		{
			name:     "extension without params",
			offer:    &Offer{Extensions: []Extension{{Name: "permessage-deflate"}}},
			wantExts: "permessage-deflate",
		},
		{
			name: "extensions with params keep order",
			offer: &Offer{Extensions: []Extension{
				{Name: "permessage-deflate", Params: []ExtensionParam{
					{Name: "server_max_window_bits", Value: "10"},
					{Name: "client_max_window_bits"},
				}},
				{Name: "x-webkit-deflate-frame", Params: []ExtensionParam{
					{Name: "no_context_takeover", Value: "true"},
				}},
			}},
			wantExts: "permessage-deflate; server_max_window_bits=10; client_max_window_bits, x-webkit-deflate-frame; no_context_takeover=true",
		},
		{
			name: "both",
			offer: &Offer{
				Subprotocols: []string{"chat"},
				Extensions:   []Extension{{Name: "foo"}},
			},
			wantProto: "chat",
			wantExts:  "foo",
		},
	}

	b := NewRequestBuilder(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := b.Build("ws://example.com/", tt.offer)
			require.NoError(t, err)

			proto, ok := h.Lookup(HeaderSecWebSocketProtocol)
			assert.Equal(t, tt.wantProto != "", ok)
			assert.Equal(t, tt.wantProto, proto)

			exts, ok := h.Lookup(HeaderSecWebSocketExts)
			assert.Equal(t, tt.wantExts != "", ok)
			assert.Equal(t, tt.wantExts, exts)
		})
	}
}

func TestRequestBuilder_EmptyTarget(t *testing.T) {
	_, err := NewRequestBuilder(nil).Build("", nil)
	assert.ErrorIs(t, err, ErrEmptyTarget)
}

func TestRequestBuilder_EntropyFailure(t *testing.T) {
	b := NewRequestBuilder(NewNonceGenerator(bytes.NewReader(nil)))

	_, err := b.Build("ws://example.com/", nil)
	var entropyErr *EntropyError
	assert.ErrorAs(t, err, &entropyErr)
}
