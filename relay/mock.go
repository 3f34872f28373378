package relay

import (
	"github.com/stretchr/testify/mock"
	"github.com/thrylos-labs/syncrelay/types"
)

// MockNetwork is a testify-based Network double, exported so consumers of the
// relay can script network behavior in their own tests.
type MockNetwork struct {
	mock.Mock
}

var _ Network = (*MockNetwork)(nil)

func NewMockNetwork() *MockNetwork {
	return &MockNetwork{}
}

func (m *MockNetwork) DisconnectPeer(peer types.PeerID, protocol types.ProtocolName) {
	m.Called(peer, protocol)
}

func (m *MockNetwork) ReportPeer(peer types.PeerID, change types.ReputationChange) {
	m.Called(peer, change)
}

func (m *MockNetwork) StartRequest(peer types.PeerID, protocol types.ProtocolName, payload []byte,
	fallback *types.FallbackRequest, reply *ReplySender, connect types.IfDisconnected) {
	m.Called(peer, protocol, payload, fallback, reply, connect)
}
