package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()

	var got1, got2 []Message
	b.Subscribe(func(m Message) { got1 = append(got1, m) })
	b.Subscribe(func(m Message) { got2 = append(got2, m) })

	b.Publish(Message{Type: MessageSyncComplete, Count: 3})

	assert.Equal(t, []Message{{Type: MessageSyncComplete, Count: 3}}, got1)
	assert.Equal(t, []Message{{Type: MessageSyncComplete, Count: 3}}, got2)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster()

	var got []Message
	unsubscribe := b.Subscribe(func(m Message) { got = append(got, m) })

	b.Publish(Message{Type: MessageSyncComplete, Count: 1})
	unsubscribe()
	b.Publish(Message{Type: MessageSyncComplete, Count: 2})

	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Count)
}

func TestBroadcaster_LateSubscriberGetsNothing(t *testing.T) {
	b := NewBroadcaster()

	b.Publish(Message{Type: MessageSyncComplete, Count: 5})

	var got []Message
	b.Subscribe(func(m Message) { got = append(got, m) })

	assert.Empty(t, got)
}

func TestBroadcaster_PublishWithNoSubscribers(t *testing.T) {
	b := NewBroadcaster()

	// Не должно паниковать
	b.Publish(Message{Type: MessageSyncComplete, Count: 0})
}

func TestBroadcaster_UnsubscribeFromHandler(t *testing.T) {
	b := NewBroadcaster()

	var count int
	var unsubscribe func()
	unsubscribe = b.Subscribe(func(m Message) {
		count++
		unsubscribe()
	})

	b.Publish(Message{Type: MessageSyncComplete, Count: 1})
	b.Publish(Message{Type: MessageSyncComplete, Count: 1})

	assert.Equal(t, 1, count)
}
