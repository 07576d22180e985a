package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/OtoCare-BookingService/internal/watch"
)

var (
	ErrPublish   = errors.New("notify: failed to publish change")
	ErrSubscribe = errors.New("notify: failed to subscribe")
)

const (
	changedPayload = "changed"

	// defaultIdleCheck is how long a feed waits for traffic before it pings
	// the subscription connection.
	defaultIdleCheck = 30 * time.Second
)

var errPongTimeout = errors.New("notify: no pong from redis")

// RedisNotifier carries change signals over Redis pub/sub so every replica
// sees bookings admitted by any other replica.
//
// A feed ends with an error as soon as its connection fails. It never
// resubscribes, since changes published while it was gone are lost.
type RedisNotifier struct {
	client    *redis.Client
	prefix    string
	idleCheck time.Duration
}

func NewRedisNotifier(client *redis.Client, prefix string) *RedisNotifier {
	return &RedisNotifier{client: client, prefix: prefix, idleCheck: defaultIdleCheck}
}

func (n *RedisNotifier) channel(topic string) string {
	return n.prefix + topic
}

func (n *RedisNotifier) Publish(ctx context.Context, topic string) error {
	if err := n.client.Publish(ctx, n.channel(topic), changedPayload).Err(); err != nil {
		return fmt.Errorf("%w: topic=%s: %v", ErrPublish, topic, err)
	}
	return nil
}

// Subscribe returns once Redis has confirmed the subscription, so no change
// published after Subscribe returns is missed.
func (n *RedisNotifier) Subscribe(ctx context.Context, topic string) (watch.Feed, error) {
	ps := n.client.Subscribe(ctx, n.channel(topic))

	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("%w: topic=%s: %v", ErrSubscribe, topic, err)
	}

	feed := &redisFeed{
		ps:        ps,
		idleCheck: n.idleCheck,
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go feed.pump()

	return feed, nil
}

type redisFeed struct {
	ps        *redis.PubSub
	idleCheck time.Duration
	changes   chan struct{}
	done      chan struct{}
	closing   atomic.Bool
	once      sync.Once

	mu  sync.Mutex
	err error
}

// pump reads the subscription connection directly. PubSub.Channel would
// reconnect behind our back and drop changes published in between.
func (f *redisFeed) pump() {
	defer close(f.done)
	defer close(f.changes)

	ctx := context.Background()
	awaitingPong := false

	for {
		msg, err := f.ps.ReceiveTimeout(ctx, f.idleCheck)
		if err != nil {
			if f.closing.Load() {
				return
			}
			if !isTimeout(err) {
				f.fail(err)
				return
			}
			if awaitingPong {
				f.fail(errPongTimeout)
				return
			}
			if err := f.ps.Ping(ctx); err != nil {
				if !f.closing.Load() {
					f.fail(err)
				}
				return
			}
			awaitingPong = true
			continue
		}

		switch msg.(type) {
		case *redis.Message:
			select {
			case f.changes <- struct{}{}:
			default:
			}
		case *redis.Pong:
			awaitingPong = false
		}
	}
}

func (f *redisFeed) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *redisFeed) Changes() <-chan struct{} {
	return f.changes
}

// Err returns the connection error that ended the feed.
func (f *redisFeed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *redisFeed) Close() error {
	var err error
	f.once.Do(func() {
		f.closing.Store(true)
		err = f.ps.Close()
		<-f.done
	})
	return err
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
