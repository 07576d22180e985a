package notify

import (
	"context"
	"sync"

	"github.com/m04kA/OtoCare-BookingService/internal/watch"
)

// MemoryNotifier fans change signals out to subscribers in this process.
type MemoryNotifier struct {
	mu     sync.Mutex
	topics map[string]map[*memoryFeed]struct{}
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{topics: make(map[string]map[*memoryFeed]struct{})}
}

// Publish signals every subscriber of topic. Signals coalesce per subscriber.
func (n *MemoryNotifier) Publish(_ context.Context, topic string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for feed := range n.topics[topic] {
		feed.signal()
	}
	return nil
}

func (n *MemoryNotifier) Subscribe(_ context.Context, topic string) (watch.Feed, error) {
	feed := &memoryFeed{
		changes: make(chan struct{}, 1),
		topic:   topic,
		owner:   n,
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	subs, ok := n.topics[topic]
	if !ok {
		subs = make(map[*memoryFeed]struct{})
		n.topics[topic] = subs
	}
	subs[feed] = struct{}{}

	return feed, nil
}

// Subscribers returns the number of open feeds on topic.
func (n *MemoryNotifier) Subscribers(topic string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.topics[topic])
}

func (n *MemoryNotifier) remove(feed *memoryFeed) {
	n.mu.Lock()
	defer n.mu.Unlock()

	subs := n.topics[feed.topic]
	if _, ok := subs[feed]; !ok {
		return
	}
	delete(subs, feed)
	if len(subs) == 0 {
		delete(n.topics, feed.topic)
	}
	close(feed.changes)
}

type memoryFeed struct {
	changes chan struct{}
	topic   string
	owner   *MemoryNotifier
}

func (f *memoryFeed) Changes() <-chan struct{} {
	return f.changes
}

// signal is called with the owner lock held.
func (f *memoryFeed) signal() {
	select {
	case f.changes <- struct{}{}:
	default:
	}
}

// Err is always nil: a memory feed ends only through Close.
func (f *memoryFeed) Err() error {
	return nil
}

func (f *memoryFeed) Close() error {
	f.owner.remove(f)
	return nil
}
