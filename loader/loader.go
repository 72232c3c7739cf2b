// Package loader fetches the samples of a preset window and degrades every
// failure to an empty result.
package loader

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/statsclient"
	"github.com/safedep/dry/log"
)

// Fetcher performs a single stats request.
type Fetcher interface {
	FetchConcurrency(ctx context.Context, q statsclient.Query) ([]concurrency.Sample, error)
}

// Result is the outcome of one load.
type Result struct {
	Preset   preset.Preset
	Window   preset.Window
	Bucket   int
	Samples  []concurrency.Sample
	LoadedAt time.Time

	// Err is kept for diagnostics only. Samples is empty whenever Err is set.
	Err error
}

// Series normalizes the loaded samples.
func (r Result) Series() concurrency.Series {
	return concurrency.Normalize(r.Samples)
}

// Option configures a Loader.
type Option func(*Loader)

// WithClock overrides the time source used to compute windows.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

// Loader resolves windows and fetches samples.
type Loader struct {
	fetcher  Fetcher
	now      func() time.Time
	inflight atomic.Int32
}

// New creates a loader backed by f.
func New(f Fetcher, opts ...Option) *Loader {
	l := &Loader{fetcher: f, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Loading reports whether a load is in progress.
func (l *Loader) Loading() bool {
	return l.inflight.Load() > 0
}

// Load fetches the samples of p's window ending now.
func (l *Loader) Load(ctx context.Context, p preset.Preset) Result {
	l.inflight.Add(1)
	defer l.inflight.Add(-1)

	now := l.now()
	q := statsclient.QueryFor(p, now)
	res := Result{
		Preset:   p,
		Window:   preset.Window{From: q.From, To: q.To},
		Bucket:   q.BucketMinutes,
		LoadedAt: now,
	}

	samples, err := l.fetcher.FetchConcurrency(ctx, q)
	if err != nil {
		log.Errorf("failed to load player concurrency for %s: %v", p.ID, err)
		res.Samples = []concurrency.Sample{}
		res.Err = err
		return res
	}

	if samples == nil {
		samples = []concurrency.Sample{}
	}
	res.Samples = samples
	log.Debugf("loaded %d player concurrency samples for %s", len(samples), p.ID)
	return res
}
