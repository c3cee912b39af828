package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/infrastructure/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fontify-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "font/woff2")
		_, _ = w.Write([]byte("wOF2"))
	}))
	t.Cleanup(srv.Close)

	c := fetch.NewClient(fetch.Config{UserAgent: "fontify-test"})

	got, err := c.Fetch(context.Background(), srv.URL+"/a.woff2")
	require.NoError(t, err)
	assert.Equal(t, []byte("wOF2"), got.Body)
	assert.Equal(t, "font/woff2", got.ContentType)
}

func TestClient_FetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	_, err := fetch.NewClient(fetch.Config{}).Fetch(context.Background(), srv.URL+"/missing.woff")

	var statusErr *port.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestClient_FetchTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, 64))
	}))
	t.Cleanup(srv.Close)

	_, err := fetch.NewClient(fetch.Config{MaxBytes: 16}).Fetch(context.Background(), srv.URL+"/big.ttf")
	require.ErrorIs(t, err, fetch.ErrTooLarge)
}

func TestClient_FetchCoalescesConcurrentRequests(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte("font"))
	}))
	t.Cleanup(srv.Close)

	c := fetch.NewClient(fetch.Config{})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Fetch(context.Background(), srv.URL+"/same.woff")
			assert.NoError(t, err)
			if got != nil {
				assert.Equal(t, []byte("font"), got.Body)
			}
		}()
	}

	assert.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_FetchHonoursCallerCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := fetch.NewClient(fetch.Config{}).Fetch(ctx, srv.URL+"/slow.woff")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Probe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
	}))
	t.Cleanup(srv.Close)

	res, err := fetch.NewClient(fetch.Config{}).Probe(context.Background(), srv.URL+"/fonts.css")
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "text/css; charset=utf-8", res.ContentType)
}

func TestClient_ProbeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := fetch.NewClient(fetch.Config{Timeout: time.Second}).Probe(context.Background(), addr+"/x.woff")
	require.Error(t, err)
}

func TestClient_RateLimitRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	t.Cleanup(srv.Close)

	c := fetch.NewClient(fetch.Config{RatePerSecond: 0.001, Burst: 1})

	_, err := c.Probe(context.Background(), srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.Probe(ctx, srv.URL)
	require.Error(t, err)
}
