package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

func TestSourceForwardsStoreEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event, 1)
	source := NewSource(in)
	require.NoError(t, source.Start(ctx))

	sent := core.Event{
		Type:      core.EventUpsert,
		Key:       core.Key{Path: "/repo/a.go", Line: 3},
		Timestamp: time.Now().Unix(),
	}
	in <- sent

	select {
	case got := <-source.Events():
		e, ok := got.(core.Event)
		require.True(t, ok)
		assert.Equal(t, sent.Type, e.Type)
		assert.Equal(t, sent.Key, e.Key)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for forwarded event")
	}
}

func TestSourceClosesOnInputClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event)
	source := NewSource(in)
	require.NoError(t, source.Start(ctx))

	close(in)

	select {
	case _, ok := <-source.Events():
		assert.False(t, ok, "output channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for output channel to close")
	}
}
