package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvOrTimeout(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case data := <-ch:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for hub delivery")
		return nil
	}
}

func assertNoDelivery(t *testing.T, ch chan []byte) {
	t.Helper()
	select {
	case data := <-ch:
		t.Fatalf("unexpected delivery: %s", data)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHub_ViewerBroadcastReachesHostAndViewers(t *testing.T) {
	h := NewHub()

	hostConn := &Connection{GameID: "g1", IsHost: true, Send: make(chan []byte, 4), Hub: h}
	viewer1 := &Connection{GameID: "g1", Send: make(chan []byte, 4), Hub: h}
	viewer2 := &Connection{GameID: "g1", Send: make(chan []byte, 4), Hub: h}
	other := &Connection{GameID: "g2", Send: make(chan []byte, 4), Hub: h}
	h.Register(hostConn)
	h.Register(viewer1)
	h.Register(viewer2)
	h.Register(other)

	h.BroadcastToViewers("g1", map[string]string{"event": "state"})

	for _, conn := range []*Connection{hostConn, viewer1, viewer2} {
		assert.JSONEq(t, `{"event":"state"}`, string(recvOrTimeout(t, conn.Send)))
	}
	assertNoDelivery(t, other.Send)
}

func TestHub_HostOnlyStaysOffViewerChannels(t *testing.T) {
	h := NewHub()

	hostConn := &Connection{GameID: "g1", IsHost: true, Send: make(chan []byte, 4), Hub: h}
	viewer := &Connection{GameID: "g1", Send: make(chan []byte, 4), Hub: h}
	h.Register(hostConn)
	h.Register(viewer)

	h.BroadcastToHost("g1", map[string]string{"event": "investigation_result"})

	assert.JSONEq(t, `{"event":"investigation_result"}`, string(recvOrTimeout(t, hostConn.Send)))
	assertNoDelivery(t, viewer.Send)
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	h := NewHub()

	viewer := &Connection{GameID: "g1", Send: make(chan []byte, 4), Hub: h}
	h.Register(viewer)
	h.Unregister(viewer)

	// The unregistered channel is closed; nothing further arrives.
	_, open := <-viewer.Send
	require.False(t, open)

	h.BroadcastToViewers("g1", map[string]string{"event": "state"})
}

func TestHub_BroadcastWithoutSubscribersDoesNotBlock(t *testing.T) {
	h := NewHub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			h.BroadcastToViewers("ghost-game", map[string]int{"round": i})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked with no subscribers")
	}
}
