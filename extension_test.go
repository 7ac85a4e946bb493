package wshandshake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtensions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Extension
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"bare", "permessage-deflate", []Extension{{Name: "permessage-deflate"}}},
		{
			"params in order",
			"permessage-deflate; server_max_window_bits=10; client_max_window_bits",
			[]Extension{{Name: "permessage-deflate", Params: []ExtensionParam{
				{Name: "server_max_window_bits", Value: "10"},
				{Name: "client_max_window_bits"},
			}}},
		},
		{
			"several",
			"foo, bar; baz=2",
			[]Extension{
				{Name: "foo"},
				{Name: "bar", Params: []ExtensionParam{{Name: "baz", Value: "2"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExtensions(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExtensions_RoundTrip(t *testing.T) {
	in := "permessage-deflate; server_max_window_bits=10; client_max_window_bits"

	exts, err := ParseExtensions(in)
	require.NoError(t, err)
	require.Len(t, exts, 1)
	assert.Equal(t, in, exts[0].String())
}
