package benchmark

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The load tests run against a live server and are skipped unless
// ROOM_MANAGER_BENCH_URL is set, e.g. http://localhost:8080/api.
type benchConfig struct {
	baseURL     string
	email       string
	password    string
	concurrency int
	requests    int
}

func loadBenchConfig(t *testing.T) benchConfig {
	t.Helper()
	cfg := benchConfig{
		baseURL:     os.Getenv("ROOM_MANAGER_BENCH_URL"),
		email:       envOr("ROOM_MANAGER_BENCH_EMAIL", "admin@roommanager.com"),
		password:    envOr("ROOM_MANAGER_BENCH_PASSWORD", "123456"),
		concurrency: 10,
		requests:    100,
	}
	if cfg.baseURL == "" {
		t.Skip("ROOM_MANAGER_BENCH_URL not set")
	}
	if n, err := strconv.Atoi(os.Getenv("ROOM_MANAGER_BENCH_REQUESTS")); err == nil && n > 0 {
		cfg.requests = n
	}
	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newLiveBenchmark(t *testing.T) *APIBenchmark {
	cfg := loadBenchConfig(t)
	client := &http.Client{}
	session, err := Login(context.Background(), client, cfg.baseURL, cfg.email, cfg.password)
	require.NoError(t, err)
	return NewAPIBenchmark(cfg.baseURL, cfg.concurrency, cfg.requests, session)
}

func TestRunCollectsStatuses(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		if atomic.AddInt32(&hits, 1)%4 == 0 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result := NewAPIBenchmark(srv.URL, 4, 20, "abc").RunGET(context.Background(), "/rooms")
	assert.Equal(t, 20, result.TotalRequests)
	assert.Equal(t, 15, result.SuccessCount)
	assert.Equal(t, 5, result.FailureCount)
	assert.Equal(t, 5, result.StatusCodes[http.StatusTooManyRequests])
	assert.InDelta(t, 75.0, result.SuccessRate(), 0.001)
	assert.LessOrEqual(t, result.MinTime, result.P95Time)
	assert.LessOrEqual(t, result.P95Time, result.MaxTime)
}

func TestLoginReadsSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok"})
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	session, err := Login(context.Background(), srv.Client(), srv.URL, "a@b.c", "x")
	require.NoError(t, err)
	assert.Equal(t, "tok", session)

	_, err = Login(context.Background(), srv.Client(), srv.URL+"/nope", "a@b.c", "x")
	assert.Error(t, err)
}

func TestLiveReadEndpoints(t *testing.T) {
	b := newLiveBenchmark(t)
	for _, path := range []string{"/properties", "/rooms", "/tenants", "/incidents?status=open", "/dashboard"} {
		t.Run(path, func(t *testing.T) {
			result := b.RunGET(context.Background(), path)
			result.PrintResult()
			// the authenticated routes are rate limited per client IP
			assert.Zero(t, result.FailureCount-result.StatusCodes[http.StatusTooManyRequests], "success rate %.2f%%", result.SuccessRate())
		})
	}
}
