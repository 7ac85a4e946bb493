package wshandshake

import (
	"slices"
	"strings"
	"sync"
)

// ExtensionParam is a single name=value parameter of an extension offer.
// An empty Value renders as a bare parameter name.
type ExtensionParam struct {
	Name  string
	Value string
}

// Extension is an offered extension with its ordered parameters.
type Extension struct {
	Name   string
	Params []ExtensionParam
}

// String renders the extension as it appears in Sec-WebSocket-Extensions.
func (e Extension) String() string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	for _, p := range e.Params {
		sb.WriteString("; ")
		sb.WriteString(p.Name)
		if p.Value != "" {
			sb.WriteByte('=')
			sb.WriteString(p.Value)
		}
	}
	return sb.String()
}

// Offer lists what the client is willing to negotiate. Subprotocols are in
// preference order and are sent verbatim.
type Offer struct {
	Subprotocols []string
	Extensions   []Extension
}

// ExtensionNames returns the names of the offered extensions in order.
func (o *Offer) ExtensionNames() []string {
	if o == nil {
		return nil
	}
	names := make([]string, len(o.Extensions))
	for i, ext := range o.Extensions {
		names[i] = ext.Name
	}
	return names
}

func (o *Offer) hasSubprotocol(name string) bool {
	return slices.Contains(o.Subprotocols, name)
}

func (o *Offer) hasExtension(name string) bool {
	for _, ext := range o.Extensions {
		if ext.Name == name {
			return true
		}
	}
	return false
}

// Outcome is the result of a successful handshake. It is not modified
// after ValidateResponse returns it.
type Outcome struct {
	// Subprotocol is the server's selection, empty if none.
	Subprotocol string
	// Extensions holds accepted extension names in response order.
	Extensions []string
}

// Negotiation records the outcome of one handshake attempt. The outcome can
// be committed once; the completion callback fires on that commit.
type Negotiation struct {
	offer      *Offer
	onComplete func(subprotocol string, extensions []string)

	mu        sync.Mutex
	committed bool
	outcome   *Outcome
}

// NewNegotiation returns a Negotiation for offer. onComplete may be nil.
func NewNegotiation(offer *Offer, onComplete func(subprotocol string, extensions []string)) *Negotiation {
	return &Negotiation{offer: offer, onComplete: onComplete}
}

// Offer returns the offer the negotiation was created with.
func (n *Negotiation) Offer() *Offer {
	return n.offer
}

// Commit stores outcome and invokes the completion callback. A nil outcome
// is stored as an empty one. It returns ErrAlreadyCommitted on any call
// after the first.
func (n *Negotiation) Commit(outcome *Outcome) error {
	if outcome == nil {
		outcome = &Outcome{}
	}

	n.mu.Lock()
	if n.committed {
		n.mu.Unlock()
		return ErrAlreadyCommitted
	}
	n.committed = true
	n.outcome = outcome
	n.mu.Unlock()

	if n.onComplete != nil {
		n.onComplete(outcome.Subprotocol, slices.Clone(outcome.Extensions))
	}
	return nil
}

// Outcome returns the committed outcome, or nil before Commit.
func (n *Negotiation) Outcome() *Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.outcome
}

// Committed reports whether Commit has succeeded.
func (n *Negotiation) Committed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.committed
}
