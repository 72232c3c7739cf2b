package loader

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the refresh period of a displayed chart.
const DefaultInterval = 60 * time.Second

// Refresh runs a function periodically until stopped.
type Refresh struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartRefresh runs fn immediately and then every interval until ctx is
// done or Stop is called. Runs never overlap.
func StartRefresh(ctx context.Context, interval time.Duration, fn func(context.Context)) *Refresh {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	r := &Refresh{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(r.done)

		fn(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				fn(ctx)
			}
		}
	}()

	return r
}

// Stop cancels the timer and waits for a run in progress to return. It is
// safe to call more than once.
func (r *Refresh) Stop() {
	r.once.Do(r.cancel)
	<-r.done
}

// Done is closed once the refresh loop has exited.
func (r *Refresh) Done() <-chan struct{} {
	return r.done
}
