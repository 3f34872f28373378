package relay

import "github.com/thrylos-labs/syncrelay/types"

// The command vocabulary is closed: these three variants are the only way to
// make the relay touch the network service, and they are constructed only by
// the Handle's typed methods. A command is immutable once built and is
// consumed exactly once by the run loop.

type command interface {
	isCommand()
}

// disconnectCommand asks the service to drop the peer from the given
// protocol. Fire-and-forget.
type disconnectCommand struct {
	Peer     types.PeerID
	Protocol types.ProtocolName
}

// reportCommand adjusts a peer's reputation. Fire-and-forget.
type reportCommand struct {
	Peer   types.PeerID
	Change types.ReputationChange
}

// startRequestCommand sends a request to a peer and carries the reply slot
// the service will eventually fulfill or drop.
type startRequestCommand struct {
	Peer     types.PeerID
	Protocol types.ProtocolName
	Payload  []byte
	Reply    *ReplySender
	Connect  types.IfDisconnected
}

func (disconnectCommand) isCommand()   {}
func (reportCommand) isCommand()       {}
func (startRequestCommand) isCommand() {}
