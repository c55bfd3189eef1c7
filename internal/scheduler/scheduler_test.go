package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/sloc-weather/internal/store"
	"github.com/i474232898/sloc-weather/internal/weather"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(_ context.Context) error {
	r.calls.Add(1)
	return r.err
}

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) Purge() int {
	p.calls.Add(1)
	return 1
}

func TestNewDefaultsInterval(t *testing.T) {
	s := New(0, &countingRefresher{}, nil)
	assert.Equal(t, DefaultInterval, s.Interval())
}

func TestStartRunsImmediately(t *testing.T) {
	r := &countingRefresher{}
	s := New(time.Hour, r, nil)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestRunSurvivesRefreshError(t *testing.T) {
	r := &countingRefresher{err: errors.New("boom")}
	cache := &countingPurger{}
	s := New(time.Hour, r, cache)

	s.run()
	s.run()
	assert.Equal(t, int32(2), r.calls.Load())
	assert.Equal(t, int32(2), cache.calls.Load())
}

func TestRunPurgesExpiredEntries(t *testing.T) {
	cache := store.NewMemoryStore()
	cache.Save("slocw_expired", weather.Conditions{Icon: "wi-fog"}, time.Nanosecond)
	cache.Save("slocw_live", weather.Conditions{Icon: "wi-rain"}, time.Hour)
	time.Sleep(time.Millisecond)

	s := New(time.Hour, &countingRefresher{}, cache)
	s.run()
	assert.Equal(t, 1, cache.Len())

	_, err := cache.Get("slocw_live")
	assert.NoError(t, err)
}
