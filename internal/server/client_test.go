package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_DeliverAfterWriterExit: once writePump has gone, a full send
// buffer must not block the reader.
func TestClient_DeliverAfterWriterExit(t *testing.T) {
	c := &client{send: make(chan ServerResponse, 1), done: make(chan struct{})}
	require.True(t, c.deliver(ServerResponse{Type: TypeLabels}))

	close(c.done)
	finished := make(chan bool, 1)
	go func() { finished <- c.deliver(ServerResponse{Type: TypeLabels}) }()

	select {
	case ok := <-finished:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("deliver blocked after the writer exited")
	}
}
