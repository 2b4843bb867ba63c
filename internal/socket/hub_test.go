package socket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_SendToOfflineUserIsNotAnError(t *testing.T) {
	hub := NewHub()
	assert.NoError(t, hub.Send("nobody", []byte("hello")))
	assert.NoError(t, hub.SendJSON("nobody", map[string]int{"count": 3}))
}

func TestHub_UnregisterUnknownUser(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() { hub.Unregister("nobody") })
}

func TestHub_SendJSON_MarshalError(t *testing.T) {
	hub := NewHub()
	assert.Error(t, hub.SendJSON("nobody", make(chan int)))
}
