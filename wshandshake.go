// Package wshandshake implements the client side of the WebSocket opening
// handshake (RFC 6455, protocol version 13).
//
// It builds the upgrade request headers, generates the Sec-WebSocket-Key
// nonce, verifies the server's Sec-WebSocket-Accept token and negotiates
// subprotocols and extensions. Framing is left to the caller: a successful
// handshake yields a [Channel] bound to the upgraded connection.
//
// # Thread Safety
//
// [NonceGenerator], [RequestBuilder] and [Dialer] are safe for concurrent
// use by multiple goroutines as long as the entropy source is. Each
// handshake attempt owns its own key and [Negotiation].
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	ch, err := wshandshake.Dial(ctx, "wss://example.com/ws", &wshandshake.Offer{
//	    Subprotocols: []string{"chat", "superchat"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ch.Close()
//
//	fmt.Println("negotiated", ch.Subprotocol())
//
// # Driving the handshake yourself
//
// When the transport is owned elsewhere, use the pieces directly:
//
//	hdr, err := wshandshake.NewRequestBuilder(nil).Build(target, offer)
//	// ... send hdr, receive response headers ...
//	outcome, err := wshandshake.ValidateResponse(hdr.Get(wshandshake.HeaderSecWebSocketKey), offer, resp)
//	ch := wshandshake.NewChannel(conn, target, outcome)
package wshandshake

// Header names and values used on the wire.
const (
	HeaderUpgrade              = "Upgrade"
	HeaderConnection           = "Connection"
	HeaderSecWebSocketKey      = "Sec-WebSocket-Key"
	HeaderSecWebSocketVersion  = "Sec-WebSocket-Version"
	HeaderSecWebSocketAccept   = "Sec-WebSocket-Accept"
	HeaderSecWebSocketProtocol = "Sec-WebSocket-Protocol"
	HeaderSecWebSocketExts     = "Sec-WebSocket-Extensions"

	UpgradeValue    = "websocket"
	ConnectionValue = "upgrade"
	Version         = "13"

	// MagicGUID is appended to the key before digesting (RFC 6455 section 1.3).
	MagicGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"
)
