package types

import (
	"math"

	"github.com/google/uuid"
)

// Network identity and protocol vocabulary shared between the relay and
// whatever service implementation is plugged in at runtime. Kept here so the
// relay package and service implementations can depend on it without
// depending on each other.

// PeerID identifies a remote peer on the network. The relay treats it as
// opaque; the network service decides what it actually maps to.
type PeerID string

// RandomPeerID returns a fresh, unique peer identity. Mainly useful in tests
// and as a placeholder before a real identity is known.
func RandomPeerID() PeerID {
	return PeerID(uuid.NewString())
}

func (p PeerID) String() string {
	return string(p)
}

// ProtocolName identifies a request/response protocol, e.g. "/thrylos/sync/1".
type ProtocolName string

func (p ProtocolName) String() string {
	return string(p)
}

// ReputationChange is a signed adjustment to a peer's reputation, together
// with a short reason used for diagnostics on the service side.
type ReputationChange struct {
	Value  int32
	Reason string
}

// NewReputationChange builds a reputation adjustment with the given delta.
func NewReputationChange(value int32, reason string) ReputationChange {
	return ReputationChange{Value: value, Reason: reason}
}

// NewFatalReputationChange builds the strongest possible negative adjustment,
// used when a peer misbehaves badly enough that it should be banned outright.
func NewFatalReputationChange(reason string) ReputationChange {
	return ReputationChange{Value: math.MinInt32, Reason: reason}
}

// IfDisconnected controls whether a request may trigger dialing a peer we are
// not currently connected to.
type IfDisconnected int

const (
	// TryConnect allows the network service to establish a connection to the
	// target peer before sending the request.
	TryConnect IfDisconnected = iota

	// ImmediateError fails the request with FailureNotConnected instead of
	// dialing.
	ImmediateError
)

// ShouldConnect reports whether the policy permits dialing a disconnected peer.
func (i IfDisconnected) ShouldConnect() bool {
	return i == TryConnect
}

// RequestResponse is the successful outcome of a network request: the raw
// response payload and the protocol that actually produced it.
type RequestResponse struct {
	Payload  []byte
	Protocol ProtocolName
}

// FallbackRequest is an optional alternative payload sent when the target
// peer does not support the primary protocol. A nil fallback means the
// request fails instead of downgrading.
type FallbackRequest struct {
	Payload  []byte
	Protocol ProtocolName
}
