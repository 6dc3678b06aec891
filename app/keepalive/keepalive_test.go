package keepalive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPingerHitsSelfURL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	New(srv.URL, 10*time.Millisecond).Start(ctx)

	assert.Eventually(t, func() bool {
		return hits.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPingerDisabledWithoutURL(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Nothing to assert beyond "does not block or panic".
	New("", 10*time.Millisecond).Start(ctx)
}

func TestPingerStopsOnCancel(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	New(srv.URL, 10*time.Millisecond).Start(ctx)

	assert.Eventually(t, func() bool { return hits.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	time.Sleep(50 * time.Millisecond)
	settled := hits.Load()
	time.Sleep(100 * time.Millisecond)
	assert.LessOrEqual(t, hits.Load(), settled+1, "no further pings after cancellation")
}
