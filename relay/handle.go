package relay

import (
	"sync/atomic"

	"github.com/thrylos-labs/syncrelay/types"
)

// Handle is the producer side of the relay: a lightweight, freely cloneable
// reference that conveys only the right to enqueue commands, never direct
// access to the network service.
//
// Every clone counts as one reference on the queue. Close releases this
// clone's reference; once every clone (including the provider's own) is
// closed and the queue drains, the relay's run loop returns. A handle used
// after the relay has terminated does not error: fire-and-forget commands
// are silently discarded and StartRequest resolves to ErrRelayClosed. Callers
// that need delivery confirmation must not rely on these best-effort signals.
type Handle struct {
	queue  *commandQueue
	closed atomic.Bool
}

func newHandle(q *commandQueue) *Handle {
	return &Handle{queue: q}
}

// Clone returns a new independent reference to the relay. The clone must be
// Closed by its holder.
func (h *Handle) Clone() *Handle {
	clone := newHandle(h.queue)
	if !h.queue.addSender() {
		// Queue already closed; the clone is valid but enqueues nothing.
		clone.closed.Store(true)
	}
	return clone
}

// Close releases this clone's reference. Idempotent. The handle discards all
// commands after it is closed.
func (h *Handle) Close() {
	if h.closed.CompareAndSwap(false, true) {
		h.queue.releaseSender()
	}
}

// DisconnectPeer asks the network service to drop the peer from the given
// protocol. Best-effort: no result, and silently discarded if the relay has
// terminated.
func (h *Handle) DisconnectPeer(peer types.PeerID, protocol types.ProtocolName) {
	if h.closed.Load() {
		return
	}
	h.queue.push(disconnectCommand{Peer: peer, Protocol: protocol})
}

// ReportPeer adjusts a peer's reputation on the network service. Same
// best-effort semantics as DisconnectPeer.
func (h *Handle) ReportPeer(peer types.PeerID, change types.ReputationChange) {
	if h.closed.Load() {
		return
	}
	h.queue.push(reportCommand{Peer: peer, Change: change})
}

// StartRequest sends payload to peer over the given protocol and returns a
// future for the eventual outcome. connect controls whether a disconnected
// peer may be dialed first. The returned future may be abandoned; the request
// still runs to completion on the service side.
func (h *Handle) StartRequest(peer types.PeerID, protocol types.ProtocolName, payload []byte, connect types.IfDisconnected) *ResponseFuture {
	tx, rx := newReplySlot()
	cmd := startRequestCommand{
		Peer:     peer,
		Protocol: protocol,
		Payload:  payload,
		Reply:    tx,
		Connect:  connect,
	}
	if h.closed.Load() || !h.queue.push(cmd) {
		tx.Drop()
	}
	return rx
}

// QueueLen reports how many commands are waiting for the relay. Diagnostics
// only.
func (h *Handle) QueueLen() int {
	return h.queue.Len()
}
