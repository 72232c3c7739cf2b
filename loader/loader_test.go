package loader

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/statsclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu      sync.Mutex
	queries []statsclient.Query
	samples []concurrency.Sample
	err     error
	during  func()
}

func (f *fakeFetcher) FetchConcurrency(ctx context.Context, q statsclient.Query) ([]concurrency.Sample, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	if f.during != nil {
		f.during()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.samples, nil
}

func hourlySamples(start time.Time, n int) []concurrency.Sample {
	out := make([]concurrency.Sample, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		out = append(out, concurrency.Sample{
			Timestamp: concurrency.NumericTimestamp(float64(ts.UnixMilli())),
			Players:   concurrency.PlayerCount(i),
		})
	}
	return out
}

func TestLoad(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &fakeFetcher{samples: hourlySamples(now.Add(-24*time.Hour), 24)}
	l := New(f, WithClock(func() time.Time { return now }))

	res := l.Load(context.Background(), preset.Resolve("1d"))

	require.NoError(t, res.Err)
	assert.Len(t, res.Samples, 24)
	assert.Equal(t, "1d", res.Preset.ID)
	assert.Equal(t, 6, res.Bucket)
	assert.Equal(t, now, res.Window.To)
	assert.Equal(t, now.Add(-24*time.Hour), res.Window.From)
	assert.Equal(t, 24, res.Series().Len())

	require.Len(t, f.queries, 1)
	assert.Equal(t, 6, f.queries[0].BucketMinutes)
	assert.False(t, l.Loading())
}

func TestLoad_FailureYieldsEmpty(t *testing.T) {
	errs := []error{
		statsclient.ErrUnexpectedStatus,
		concurrency.ErrNotArray,
		concurrency.ErrMalformedResponse,
		errors.New("connection refused"),
	}

	for _, cause := range errs {
		t.Run(cause.Error(), func(t *testing.T) {
			l := New(&fakeFetcher{err: cause})
			res := l.Load(context.Background(), preset.Resolve("6h"))

			assert.ErrorIs(t, res.Err, cause)
			assert.NotNil(t, res.Samples)
			assert.Empty(t, res.Samples)
			assert.True(t, res.Series().Empty())
			assert.False(t, l.Loading())
		})
	}
}

func TestLoad_NilSamples(t *testing.T) {
	l := New(&fakeFetcher{})
	res := l.Load(context.Background(), preset.Resolve("1w"))

	require.NoError(t, res.Err)
	assert.NotNil(t, res.Samples)
	assert.Equal(t, 0, res.Series().Len())
}

func TestLoad_LoadingFlag(t *testing.T) {
	var l *Loader
	var sawLoading bool
	f := &fakeFetcher{during: func() { sawLoading = l.Loading() }}
	l = New(f)

	assert.False(t, l.Loading())
	l.Load(context.Background(), preset.Resolve("1w"))
	assert.True(t, sawLoading)
	assert.False(t, l.Loading())
}

func TestStartRefresh(t *testing.T) {
	var runs atomic.Int32
	r := StartRefresh(context.Background(), 5*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)

	r.Stop()
	stopped := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())

	r.Stop()
}

func TestStartRefresh_RunsImmediately(t *testing.T) {
	ran := make(chan struct{}, 1)
	r := StartRefresh(context.Background(), time.Hour, func(ctx context.Context) {
		ran <- struct{}{}
	})
	defer r.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("refresh function was not run immediately")
	}
}

func TestStartRefresh_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := StartRefresh(ctx, time.Hour, func(ctx context.Context) {})

	cancel()

	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("refresh loop did not exit on cancel")
	}
	r.Stop()
}

func TestStartRefresh_StopWaitsForRun(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool
	r := StartRefresh(context.Background(), time.Hour, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	r.Stop()
	assert.True(t, finished.Load())
}
