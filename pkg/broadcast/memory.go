package broadcast

import (
	"context"
	"sync"
)

// Option configures a MemoryBroadcaster.
type Option func(*memoryOptions)

type memoryOptions struct {
	replayLatest bool
	keepLatest   bool
}

// WithReplayLatest makes new subscribers receive the most recent message
// immediately after subscribing. Useful when messages carry full state
// snapshots and late joiners need the current state.
func WithReplayLatest() Option {
	return func(o *memoryOptions) {
		o.replayLatest = true
	}
}

// WithKeepLatest changes the slow consumer policy: instead of dropping the
// subscriber when its buffer is full, the oldest buffered message is discarded.
// Suited for state snapshots where only the newest value matters.
func WithKeepLatest() Option {
	return func(o *memoryOptions) {
		o.keepLatest = true
	}
}

// MemoryBroadcaster drops messages for slow consumers rather than blocking the broadcast operation.
// All methods are safe for concurrent use.
type MemoryBroadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	opts        memoryOptions
	latest      *Message[T]
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup // tracks cleanup goroutines
}

// NewMemoryBroadcaster creates a new in-memory broadcaster.
// The bufferSize parameter determines the channel buffer size for each subscriber.
// A minimum buffer size of 1 is enforced.
func NewMemoryBroadcaster[T any](bufferSize int, opts ...Option) *MemoryBroadcaster[T] {
	b := &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		// Minimum buffer size of 1 prevents zero-buffer channels which would
		// make all sends blocking and defeat the non-blocking design
		bufferSize: max(bufferSize, 1),
	}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Subscribe creates a new subscriber that will receive all broadcast messages.
// The subscription is automatically cleaned up when the provided context is cancelled.
// If the broadcaster is already closed, returns a closed subscriber.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.bufferSize, b.opts.keepLatest)
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if b.opts.replayLatest && b.latest != nil {
		sub.send(*b.latest)
	}

	// Auto-cleanup on context cancellation
	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Broadcast sends a message to all active subscribers.
// Messages are sent non-blocking. Unless WithKeepLatest is set, a subscriber
// with a full buffer misses the message and is removed.
// Returns nil even if some subscribers didn't receive the message.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	// Replay needs the write lock so a concurrent Subscribe sees either the
	// stored message or the live send, never both
	if b.opts.replayLatest {
		b.mu.Lock()
		defer b.mu.Unlock()
	} else {
		b.mu.RLock()
		defer b.mu.RUnlock()
	}

	if b.closed {
		return nil
	}

	if b.opts.replayLatest {
		b.latest = &msg
	}

	for sub := range b.subscribers {
		if !sub.send(msg) {
			// Removal needs the write lock, so it runs outside this broadcast
			go b.unsubscribe(sub)
		}
	}

	return nil
}

// SubscriberCount returns the number of active subscribers.
func (b *MemoryBroadcaster[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close shuts down the broadcaster and closes all subscribers.
// It is safe to call Close multiple times.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	b.latest = nil

	for sub := range b.subscribers {
		_ = sub.Close()
	}

	clear(b.subscribers)
	b.mu.Unlock()

	// Wait for cleanup goroutines so Close and async unsubscribes do not race
	b.cleanupWg.Wait()

	return nil
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
