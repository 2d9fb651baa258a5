package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"room-manager/internal/error/code"
)

func limitedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/*path", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r http.Handler, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestIPRateLimiterBurst(t *testing.T) {
	r := limitedRouter(IPRateLimiter(0.001, 3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "/a", "10.0.0.1").Code)
	}
	rec := hit(r, "/a", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.EqualValues(t, code.ErrTooManyRequests, gjson.Get(rec.Body.String(), "code").Int())

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, hit(r, "/a", "10.0.0.2").Code)
}

func TestPathRateLimiterSharesBucketAcrossClients(t *testing.T) {
	r := limitedRouter(PathRateLimiter(0.001, 1))

	assert.Equal(t, http.StatusOK, hit(r, "/dashboard", "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "/dashboard", "10.0.0.2").Code)
	assert.Equal(t, http.StatusOK, hit(r, "/rooms", "10.0.0.2").Code)
}

func TestRateLimiterCustomKey(t *testing.T) {
	r := limitedRouter(RateLimiter(RateLimiterConfig{
		Rate:    0.001,
		Burst:   1,
		KeyFunc: func(c *gin.Context) string { return c.GetHeader("X-Client") },
	}))

	req := func(client string) int {
		rq := httptest.NewRequest(http.MethodGet, "/", nil)
		rq.Header.Set("X-Client", client)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, rq)
		return rec.Code
	}
	assert.Equal(t, http.StatusOK, req("a"))
	assert.Equal(t, http.StatusTooManyRequests, req("a"))
	assert.Equal(t, http.StatusOK, req("b"))
}

func TestLimiterStoreDropsIdleVisitors(t *testing.T) {
	store := newLimiterStore(RateLimiterConfig{Rate: 1, Burst: 1, ExpiryTime: time.Minute})
	start := time.Now()

	first := store.get("a", start)
	store.get("b", start.Add(30*time.Second))
	assert.Len(t, store.visitors, 2)

	// the sweep runs once the expiry has passed since the previous one
	store.get("b", start.Add(65*time.Second))
	assert.Len(t, store.visitors, 1)
	assert.Contains(t, store.visitors, "b")
	assert.NotSame(t, first, store.get("a", start.Add(66*time.Second)))
}
