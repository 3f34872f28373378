package types

import "fmt"

// FailureKind classifies why a network request could not be completed. The
// set is closed: the network service produces these, the relay only
// transports them.
type FailureKind string

const (
	// FailureNotConnected means the target peer is not connected and the
	// connect policy did not permit dialing it.
	FailureNotConnected FailureKind = "not-connected"

	// FailureUnknownProtocol means the local node does not have the requested
	// protocol registered.
	FailureUnknownProtocol FailureKind = "unknown-protocol"

	// FailureRefused means the remote peer refused to answer the request.
	FailureRefused FailureKind = "refused"

	// FailureObsolete means the request was superseded before it could be
	// sent, e.g. the substream was closed.
	FailureObsolete FailureKind = "obsolete"

	// FailureTimeout means the remote peer did not answer in time.
	FailureTimeout FailureKind = "timeout"

	// FailureNetwork covers transport-level errors while sending or
	// receiving.
	FailureNetwork FailureKind = "network"
)

// RequestFailure is the typed error a network service reports through a
// request's reply slot. It is distinct from local relay errors such as
// relay.ErrRelayClosed, so callers can tell "the network rejected this"
// apart from "the relay was already shut down".
type RequestFailure struct {
	Kind FailureKind
}

// NewRequestFailure builds a request failure of the given kind.
func NewRequestFailure(kind FailureKind) *RequestFailure {
	return &RequestFailure{Kind: kind}
}

func (f *RequestFailure) Error() string {
	return fmt.Sprintf("request failed: %s", f.Kind)
}
