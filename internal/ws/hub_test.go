package ws

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesRegisteredClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	client := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Publish(map[string]string{"type": "notification.shown"}))

	select {
	case msg := <-client.send:
		assert.JSONEq(t, `{"type":"notification.shown"}`, string(msg))
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}

	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_NilIsSafe(t *testing.T) {
	var hub *Hub
	assert.NoError(t, hub.Publish("x"))
	assert.Equal(t, 0, hub.ClientCount())
}
