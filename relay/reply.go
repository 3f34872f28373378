package relay

import (
	"context"
	"errors"
	"sync"

	"github.com/thrylos-labs/syncrelay/types"
)

// ErrRelayClosed is the local failure a request resolves to when its reply
// slot was dropped without ever being written: either the relay was already
// shut down when the request was enqueued, or the network service discarded
// the slot. It is deliberately distinct from *types.RequestFailure so callers
// can tell a relay shutdown apart from a network-level rejection.
var ErrRelayClosed = errors.New("reply channel closed before a response arrived")

type requestResult struct {
	resp types.RequestResponse
	err  error
}

// newReplySlot builds the two ends of a one-shot reply channel: the sender
// travels inside a startRequestCommand to the network service, the future
// stays with the caller.
func newReplySlot() (*ReplySender, *ResponseFuture) {
	ch := make(chan requestResult, 1)
	return &ReplySender{ch: ch}, &ResponseFuture{ch: ch}
}

// ReplySender is the write side of a one-shot reply slot. At most one of
// Send/Drop takes effect; later calls are no-ops. The network service must
// eventually call one of the two for every slot it is handed, even when
// nobody is reading the other end anymore.
type ReplySender struct {
	once sync.Once
	ch   chan requestResult
}

// Send delivers the request outcome: a response on success, or a
// *types.RequestFailure describing why the network could not complete it.
func (s *ReplySender) Send(resp types.RequestResponse, err error) {
	s.once.Do(func() {
		s.ch <- requestResult{resp: resp, err: err}
		close(s.ch)
	})
}

// Drop abandons the slot without delivering anything. The waiting future
// resolves to ErrRelayClosed.
func (s *ReplySender) Drop() {
	s.once.Do(func() {
		close(s.ch)
	})
}

// ResponseFuture is the read side of a one-shot reply slot. It is single-use:
// the first Await that observes an outcome consumes it.
type ResponseFuture struct {
	ch chan requestResult
}

// Await blocks until the request resolves or ctx is done. A network-level
// failure comes back as *types.RequestFailure; a slot dropped without a
// response comes back as ErrRelayClosed. Cancelling ctx abandons the future
// without affecting the request itself.
func (f *ResponseFuture) Await(ctx context.Context) (types.RequestResponse, error) {
	select {
	case res, ok := <-f.ch:
		if !ok {
			return types.RequestResponse{}, ErrRelayClosed
		}
		if res.err != nil {
			return types.RequestResponse{}, res.err
		}
		return res.resp, nil
	case <-ctx.Done():
		return types.RequestResponse{}, ctx.Err()
	}
}
