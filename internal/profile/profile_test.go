package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisboulton/wshandshake"
)

const sample = `
url: wss://example.com/ws
timeout: 10s
subprotocols: [chat, superchat]
extensions:
  - "permessage-deflate; client_max_window_bits"
  - x-custom
headers:
  Origin: https://example.com
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "wss://example.com/ws", p.URL)
	assert.Equal(t, 10*time.Second, p.Timeout)
	assert.Equal(t, []string{"chat", "superchat"}, p.Subprotocols)
	assert.Equal(t, "https://example.com", p.HTTPHeader().Get("Origin"))

	offer, err := p.Offer()
	require.NoError(t, err)
	assert.Equal(t, &wshandshake.Offer{
		Subprotocols: []string{"chat", "superchat"},
		Extensions: []wshandshake.Extension{
			{Name: "permessage-deflate", Params: []wshandshake.ExtensionParam{{Name: "client_max_window_bits"}}},
			{Name: "x-custom"},
		},
	}, offer)
}

func TestParse_EmptyOffer(t *testing.T) {
	p, err := Parse([]byte("url: ws://localhost/\n"))
	require.NoError(t, err)

	offer, err := p.Offer()
	require.NoError(t, err)
	assert.Nil(t, offer)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("subprotocols: [chat\n"))
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "wss://example.com/ws", p.URL)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = Load(dir)
	assert.Error(t, err)
}
