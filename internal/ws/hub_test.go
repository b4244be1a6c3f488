package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, h *Hub) map[string]interface{} {
	t.Helper()
	select {
	case msg := <-h.Broadcast:
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(msg, &payload))
		return payload
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
		return nil
	}
}

func TestHub_NoticesAreBroadcast(t *testing.T) {
	logg, _ := test.NewNullLogger()
	h := NewHub(logg)

	h.Success("Product deleted")
	payload := receive(t, h)
	assert.Equal(t, "notice", payload["type"])
	assert.Equal(t, NoticeSuccess, payload["level"])
	assert.Equal(t, "Product deleted", payload["message"])

	h.Error("Failed to delete product")
	payload = receive(t, h)
	assert.Equal(t, NoticeError, payload["level"])
}

func TestHub_PublishDoesNotBlockWithoutRun(t *testing.T) {
	logg, _ := test.NewNullLogger()
	h := NewHub(logg)

	done := make(chan struct{})
	go func() {
		h.Publish(map[string]interface{}{"type": "stock_update"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
	assert.Equal(t, "stock_update", receive(t, h)["type"])
}

func TestHub_PublishKeepsOrder(t *testing.T) {
	logg, _ := test.NewNullLogger()
	h := NewHub(logg)

	h.Publish(map[string]interface{}{"type": "stock_update"})
	h.Success("Products written off to the project")
	h.Publish(map[string]interface{}{"type": "stock_update", "seq": 3})

	assert.Equal(t, "stock_update", receive(t, h)["type"])
	assert.Equal(t, "notice", receive(t, h)["type"])
	assert.Equal(t, float64(3), receive(t, h)["seq"])
}

func TestHub_PublishDropsWhenQueueFull(t *testing.T) {
	logg, hook := test.NewNullLogger()
	h := NewHub(logg)

	for i := 0; i < BroadcastBuffer+1; i++ {
		h.Publish(map[string]interface{}{"type": "stock_update", "seq": i})
	}

	assert.Len(t, h.Broadcast, BroadcastBuffer)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "ws: broadcast queue full, message dropped", hook.LastEntry().Message)
	assert.Equal(t, float64(0), receive(t, h)["seq"])
}
