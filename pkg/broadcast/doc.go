// Package broadcast provides type-safe in-process message fan-out.
//
// A MemoryBroadcaster delivers every message to all current subscribers without
// blocking the sender. Two options tune it for state snapshots:
//
//   - WithReplayLatest hands the most recent message to each new subscriber.
//   - WithKeepLatest keeps slow subscribers attached and discards their oldest
//     buffered message instead.
//
// Basic usage:
//
//	b := broadcast.NewMemoryBroadcaster[State](8, broadcast.WithReplayLatest())
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[State]{Data: current})
//
//	for msg := range sub.Receive(ctx) {
//		render(msg.Data)
//	}
//
// Subscribers are removed when their context is cancelled, when the
// broadcaster is closed, or (without WithKeepLatest) when their buffer is full.
package broadcast
