package network

import (
	"sync"

	"zonecraft/pkg/api"
)

const subscriberBuffer = 16

// Broadcaster fans zone snapshots out to connected viewers.
type Broadcaster struct {
	mu sync.RWMutex
	// session ID -> personal channel
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register creates the channel of a session, replacing an older one.
func (b *Broadcaster) Register(sessionID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, subscriberBuffer)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister removes a subscriber and closes its channel.
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// SendTo delivers to one session. A full channel drops the message.
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerResponse) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[sessionID]
	if !ok {
		return false
	}
	select {
	case ch <- msg:
		return true
	default:
		return false
	}
}

// Broadcast sends msg to every subscriber.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
