package live

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvTimeout(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestHubBroadcastReachesRoomOnly(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Client{Send: make(chan []byte, 4), Room: "v1"}
	b := &Client{Send: make(chan []byte, 4), Room: "v2"}
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast("v1", []byte("stock changed"))

	assert.Equal(t, []byte("stock changed"), recvTimeout(t, a.Send))
	select {
	case msg := <-b.Send:
		t.Fatalf("unexpected message in other room: %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := &Client{Send: make(chan []byte, 4), Room: "v1"}
	hub.Register(c)
	hub.Unregister(c)

	select {
	case _, ok := <-c.Send:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// broadcasting to the emptied room must not block
	hub.Broadcast("v1", []byte("ignored"))
}

func TestHubDropsSlowConsumer(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := &Client{Send: make(chan []byte), Room: "v1"}
	hub.Register(c)

	// nobody reads c.Send, so the first broadcast drops the client
	hub.Broadcast("v1", []byte("one"))

	select {
	case _, ok := <-c.Send:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("slow consumer was not dropped")
	}
}
