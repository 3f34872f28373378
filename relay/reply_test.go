package relay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrylos-labs/syncrelay/types"
)

func TestReplySlotDeliversOnce(t *testing.T) {
	tx, rx := newReplySlot()

	tx.Send(types.RequestResponse{Payload: []byte("first"), Protocol: "sync/1"}, nil)
	// Later writes and drops are no-ops.
	tx.Send(types.RequestResponse{Payload: []byte("second"), Protocol: "sync/1"}, nil)
	tx.Drop()

	resp, err := rx.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), resp.Payload)
}

func TestReplySlotDropResolvesClosed(t *testing.T) {
	tx, rx := newReplySlot()
	tx.Drop()
	tx.Send(types.RequestResponse{Payload: []byte("late")}, nil)

	_, err := rx.Await(context.Background())
	assert.ErrorIs(t, err, ErrRelayClosed)
}

func TestReplySlotDeliversFailure(t *testing.T) {
	tx, rx := newReplySlot()
	tx.Send(types.RequestResponse{}, types.NewRequestFailure(types.FailureTimeout))

	_, err := rx.Await(context.Background())
	var failure *types.RequestFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, types.FailureTimeout, failure.Kind)
}

func TestAwaitHonorsContext(t *testing.T) {
	tx, rx := newReplySlot()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := rx.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Abandoning the future does not disturb the slot; a write still lands.
	tx.Send(types.RequestResponse{Payload: []byte("late")}, nil)
	resp, err := rx.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("late"), resp.Payload)
}
