// Package profile loads handshake offer profiles from YAML files.
package profile

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chrisboulton/wshandshake"
)

// Common errors for profile loading.
var (
	ErrFileNotFound     = errors.New("profile file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("profile file is empty")
)

// Profile describes one handshake target and what to offer it.
type Profile struct {
	URL          string            `yaml:"url"`
	Timeout      time.Duration     `yaml:"timeout"`
	Subprotocols []string          `yaml:"subprotocols"`
	Extensions   []string          `yaml:"extensions"`
	Headers      map[string]string `yaml:"headers"`
}

// Load reads a Profile from a YAML file.
func Load(path string) (*Profile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return Parse(data)
}

// Parse decodes a Profile from YAML and checks its extension lists.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if _, err := p.Offer(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Offer converts the profile's negotiation lists into an Offer.
// It returns nil when the profile offers nothing.
func (p *Profile) Offer() (*wshandshake.Offer, error) {
	var exts []wshandshake.Extension
	for _, s := range p.Extensions {
		parsed, err := wshandshake.ParseExtensions(s)
		if err != nil {
			return nil, fmt.Errorf("extension %q: %w", s, err)
		}
		exts = append(exts, parsed...)
	}

	if len(p.Subprotocols) == 0 && len(exts) == 0 {
		return nil, nil
	}
	return &wshandshake.Offer{Subprotocols: p.Subprotocols, Extensions: exts}, nil
}

// HTTPHeader returns the profile's extra request headers.
func (p *Profile) HTTPHeader() http.Header {
	h := make(http.Header, len(p.Headers))
	for k, v := range p.Headers {
		h.Set(k, v)
	}
	return h
}
