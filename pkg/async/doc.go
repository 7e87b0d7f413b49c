// Package async runs work in the background and lets callers wait for it.
//
// Async starts a function in its own goroutine and returns a Future. Delay
// does the same after a pause and gives up without running the function if
// its context is cancelled first, which makes it a cancellable timer whose
// lifetime is tied to whatever owns the context.
//
//	ctx, cancel := context.WithCancel(context.Background())
//	f := async.Delay(ctx, 3*time.Second, quote, func(ctx context.Context, q Quote) (string, error) {
//	    return q.Price(), nil
//	})
//	cancel() // the row was removed; f completes with context.Canceled
//	_, err := f.Await()
//
// WaitAll blocks until a group of futures is done.
package async
