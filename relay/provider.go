// Package relay decouples the chain-sync engine from the shared network
// service. Sync code holds a Handle and enqueues typed commands; a single
// Provider goroutine owns the consume side and plays the commands against the
// injected Network implementation one at a time, in arrival order. The
// network service therefore never sees concurrent calls from sync, and sync
// never holds a direct reference to the network layer.
package relay

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/thrylos-labs/syncrelay/config"
	"github.com/thrylos-labs/syncrelay/types"
)

// Network is the capability the relay drives. Implemented by the node's
// network service; the relay never depends on the concrete type.
type Network interface {
	// DisconnectPeer drops the peer from the given protocol. Best-effort,
	// must not block indefinitely.
	DisconnectPeer(peer types.PeerID, protocol types.ProtocolName)

	// ReportPeer applies a reputation adjustment. Best-effort, must not block
	// indefinitely.
	ReportPeer(peer types.PeerID, change types.ReputationChange)

	// StartRequest dispatches a request and must eventually Send or Drop the
	// reply slot, even if nobody is awaiting it anymore. It must not block
	// the caller; delivery happens asynchronously on the service side.
	StartRequest(peer types.PeerID, protocol types.ProtocolName, payload []byte,
		fallback *types.FallbackRequest, reply *ReplySender, connect types.IfDisconnected)
}

// Provider is the relay actor. Construct it before the network service is up,
// hand out handles via Handle, then call Run exactly once with the real
// service. Run returns when every handle has been closed and the queue is
// drained; there is no other way to stop it and no failure mode that aborts
// the loop.
type Provider struct {
	queue   *commandQueue
	handle  *Handle
	log     zerolog.Logger
	runOnce sync.Once
}

// Option tunes a Provider at construction time.
type Option func(*Provider)

// WithLogger sets the logger used for queue diagnostics. The default is a
// no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Provider) {
		p.log = log
	}
}

// WithQueueWarningLimit overrides the queue depth at which a warning is
// logged.
func WithQueueWarningLimit(limit int) Option {
	return func(p *Provider) {
		if limit > 0 {
			p.queue.warnLimit = limit
		}
	}
}

// NewProvider builds a relay with no network capability bound yet, so handles
// can be distributed before the network service finishes initializing.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{log: zerolog.Nop()}
	p.queue = newCommandQueue("network-service-provider", config.QueueWarningLimit(), p.log)
	for _, opt := range opts {
		opt(p)
	}
	p.queue.log = p.log
	p.handle = newHandle(p.queue)
	return p
}

// Handle returns a fresh producer handle. Each returned handle must be Closed
// by its holder for the relay to ever terminate.
func (p *Provider) Handle() *Handle {
	return p.handle.Clone()
}

// Run drives commands into service until every handle is closed and the
// queue is empty, then returns. Single-use: a second call returns
// immediately without touching the service.
//
// Capability calls are made one at a time in enqueue order. StartRequest is
// dispatch-only on the service side, so the loop moves on without waiting
// for network round-trips; a failed call surfaces only through the command's
// reply slot, never as a loop error.
func (p *Provider) Run(service Network) {
	p.runOnce.Do(func() {
		p.run(service)
	})
}

func (p *Provider) run(service Network) {
	// Release the provider's own reference first, otherwise the queue could
	// never observe exhaustion from external handles closing alone.
	p.handle.Close()

	p.log.Debug().Msg("network service relay running")
	for {
		cmd, ok := p.queue.pop()
		if !ok {
			break
		}
		switch c := cmd.(type) {
		case disconnectCommand:
			service.DisconnectPeer(c.Peer, c.Protocol)
		case reportCommand:
			service.ReportPeer(c.Peer, c.Change)
		case startRequestCommand:
			service.StartRequest(c.Peer, c.Protocol, c.Payload, nil, c.Reply, c.Connect)
		}
	}
	p.log.Debug().Msg("network service relay stopped")
}
