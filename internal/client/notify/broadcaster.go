package notify

import "sync"

// MessageSyncComplete is broadcast once per completed sync batch.
const MessageSyncComplete = "SYNC_COMPLETE"

// Message представляет событие, рассылаемое открытым UI-поверхностям
type Message struct {
	Type  string `json:"type"`
	Count int    `json:"count"` // число успешно отправленных записей, может быть 0
}

// Broadcaster is an in-process pub/sub channel between the background sync
// context and any live UI surfaces. Delivery is best-effort, at most once
// per message per subscriber; a subscriber attached after a publish does not
// receive it retroactively and must re-read state on its own startup.
type Broadcaster struct {
	handlers map[int]func(Message)
	nextID   int
	mu       sync.Mutex
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{handlers: make(map[int]func(Message))}
}

// Subscribe registers a handler and returns an unsubscribe func.
func (b *Broadcaster) Subscribe(handler func(Message)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

// Publish delivers the message to every current subscriber.
func (b *Broadcaster) Publish(msg Message) {
	b.mu.Lock()
	handlers := make([]func(Message), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	// Вызываем вне lock: обработчик может подписаться или отписаться изнутри
	for _, h := range handlers {
		h(msg)
	}
}
