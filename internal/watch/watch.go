// Package watch turns a change feed into a cancellable stream of query results.
//
// A Stream loads the current value once, then reloads after every change
// signal. The first load or feed failure is emitted as a single error event
// and ends the stream; callers that want to continue must start a new one.
package watch

import (
	"context"
	"errors"
	"fmt"
)

// ErrFeedClosed is emitted when the change feed stops before the stream is closed.
var ErrFeedClosed = errors.New("watch: change feed closed")

// Feed delivers change signals for one topic.
// Changes is closed when the feed is closed or lost.
// Err reports why Changes was closed and is nil after Close.
type Feed interface {
	Changes() <-chan struct{}
	Err() error
	Close() error
}

// Option configures a Stream.
type Option func(*options)

type options struct {
	feedErr func(error) error
}

// WithFeedError rewrites the error emitted when the feed is lost.
func WithFeedError(fn func(error) error) Option {
	return func(o *options) {
		o.feedErr = fn
	}
}

// Event is one stream emission: a value or the terminal error.
type Event[T any] struct {
	Value T
	Err   error
}

// Stream is a running watch. Events is closed when the stream ends.
type Stream[T any] struct {
	events chan Event[T]
	cancel context.CancelFunc
	done   chan struct{}
}

// Start loads the current snapshot with load, maps it with mapFn, and repeats
// on every change signal from feed. The stream owns feed and closes it on exit.
func Start[R, T any](
	ctx context.Context,
	feed Feed,
	load func(ctx context.Context) (R, error),
	mapFn func(R) T,
	opts ...Option,
) *Stream[T] {
	o := options{feedErr: func(err error) error { return err }}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)

	s := &Stream[T]{
		events: make(chan Event[T]),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		defer close(s.events)
		defer feed.Close()

		emit := func() bool {
			raw, err := load(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return false
				}
				s.send(ctx, Event[T]{Err: err})
				return false
			}
			return s.send(ctx, Event[T]{Value: mapFn(raw)})
		}

		if !emit() {
			return
		}

		changes := feed.Changes()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					s.send(ctx, Event[T]{Err: o.feedErr(feedLost(feed))})
					return
				}
				if !emit() {
					return
				}
			}
		}
	}()

	return s
}

func feedLost(feed Feed) error {
	if cause := feed.Err(); cause != nil {
		return fmt.Errorf("%w: %v", ErrFeedClosed, cause)
	}
	return ErrFeedClosed
}

func (s *Stream[T]) send(ctx context.Context, ev Event[T]) bool {
	select {
	case s.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// Events returns the emission channel.
func (s *Stream[T]) Events() <-chan Event[T] {
	return s.events
}

// Done is closed once the stream goroutine has exited and the feed is released.
func (s *Stream[T]) Done() <-chan struct{} {
	return s.done
}

// Close cancels the stream and waits until the feed is released.
// Nothing is emitted after Close returns. Close is idempotent.
func (s *Stream[T]) Close() {
	s.cancel()
	<-s.done
}
