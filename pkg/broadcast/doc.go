// Package broadcast fans typed messages out to any number of subscribers.
//
// It is used to tell views that a form changed so they can re-render. A view
// only ever needs the latest state, so the in-memory implementation never
// blocks the sender and never drops a subscriber: when a subscriber's buffer
// is full the oldest pending message is discarded to make room for the new
// one.
//
//	b := broadcast.NewMemoryBroadcaster[int](4)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	_ = b.Broadcast(ctx, broadcast.Message[int]{Data: 1})
//
//	for msg := range sub.Receive(ctx) {
//		render(msg.Data)
//	}
//
// Subscriptions end when their context is cancelled, when Close is called on
// the subscriber, or when the broadcaster itself is closed.
package broadcast
