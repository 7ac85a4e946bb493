package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chrisboulton/wshandshake"
	"github.com/chrisboulton/wshandshake/internal/profile"
)

type dialFlags struct {
	config       string
	subprotocols []string
	extensions   []string
	headers      []string
	timeout      time.Duration
	timeoutSet   bool
	jsonOutput   bool
	verbose      bool
}

type dialResult struct {
	URL         string   `json:"url"`
	Status      string   `json:"status"`
	Subprotocol string   `json:"subprotocol"`
	Extensions  []string `json:"extensions"`
	Error       string   `json:"error,omitempty"`
}

func newRootCmd() *cobra.Command {
	var f dialFlags

	cmd := &cobra.Command{
		Use:   "wsdial [url]",
		Short: "Perform a WebSocket handshake and show the negotiated outcome",
		Long: `Perform a WebSocket opening handshake against a ws:// or wss:// URL,
verify the server's accept key and print the negotiated subprotocol and
extensions. Values from --config are overridden by flags.`,
		Example: `  wsdial ws://localhost:8080/ws
  wsdial -p chat -p superchat -e "permessage-deflate; client_max_window_bits" wss://example.com/ws
  wsdial --config profile.yaml --json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.timeoutSet = cmd.Flags().Changed("timeout")
			err := runDial(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, &f)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML profile with url, timeout, subprotocols, extensions and headers")
	cmd.Flags().StringArrayVarP(&f.subprotocols, "subprotocol", "p", nil, "Subprotocol to offer, repeatable, in preference order")
	cmd.Flags().StringArrayVarP(&f.extensions, "extension", "e", nil, `Extension to offer, e.g. "permessage-deflate; client_max_window_bits", repeatable`)
	cmd.Flags().StringArrayVarP(&f.headers, "header", "H", nil, "Extra request header (key:value), repeatable")
	cmd.Flags().DurationVarP(&f.timeout, "timeout", "t", 10*time.Second, "Handshake timeout")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log handshake steps to stderr")

	return cmd
}

func runDial(ctx context.Context, stdout, stderr io.Writer, args []string, f *dialFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p := &profile.Profile{}
	if f.config != "" {
		loaded, err := profile.Load(f.config)
		if err != nil {
			return err
		}
		p = loaded
	}

	if len(args) > 0 {
		p.URL = args[0]
	}
	if p.URL == "" {
		return errors.New("url is required")
	}
	if len(f.subprotocols) > 0 {
		p.Subprotocols = f.subprotocols
	}
	if len(f.extensions) > 0 {
		p.Extensions = f.extensions
	}
	if p.Timeout == 0 || f.timeoutSet {
		p.Timeout = f.timeout
	}

	offer, err := p.Offer()
	if err != nil {
		return err
	}

	hdr := p.HTTPHeader()
	for _, h := range f.headers {
		k, v, ok := strings.Cut(h, ":")
		if !ok {
			return fmt.Errorf("invalid header %q, want key:value", h)
		}
		hdr.Set(strings.TrimSpace(k), strings.TrimSpace(v))
	}

	opts := []wshandshake.DialOption{wshandshake.WithHeader(hdr)}
	if f.verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, wshandshake.WithLogger(logger))
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	result := dialResult{URL: p.URL, Status: "ok", Extensions: []string{}}
	ch, err := wshandshake.Dial(ctx, p.URL, offer, opts...)
	if err != nil {
		result.Status = "failed"
		result.Error = err.Error()
	} else {
		defer ch.Close()
		result.Subprotocol = ch.Subprotocol()
		result.Extensions = append(result.Extensions, ch.Extensions()...)
	}

	if f.jsonOutput {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "url:         %s\n", result.URL)
	fmt.Fprintf(stdout, "subprotocol: %s\n", orNone(result.Subprotocol))
	fmt.Fprintf(stdout, "extensions:  %s\n", orNone(strings.Join(result.Extensions, ", ")))
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
