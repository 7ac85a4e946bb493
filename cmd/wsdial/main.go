// wsdial performs a WebSocket opening handshake and reports what the
// server negotiated.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
