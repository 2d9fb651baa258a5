package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Rate       float64                   // 每秒允许的请求数
	Burst      int                       // 允许的突发请求数
	ExpiryTime time.Duration             // 空闲限流器过期时间
	LimitType  string                    // 限流类型: "ip"(默认), "path", "combined"
	KeyFunc    func(*gin.Context) string // 自定义键生成函数，优先于LimitType
}

// DefaultRateLimiterConfig 默认限流器配置
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,
	Burst:      5,
	ExpiryTime: 1 * time.Hour,
	LimitType:  "ip",
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore keeps one token bucket per key and drops buckets idle for longer than expiry
type limiterStore struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	limit       rate.Limit
	burst       int
	expiry      time.Duration
	lastCleanup time.Time
}

func newLimiterStore(cfg RateLimiterConfig) *limiterStore {
	return &limiterStore{
		visitors:    make(map[string]*visitor),
		limit:       rate.Limit(cfg.Rate),
		burst:       cfg.Burst,
		expiry:      cfg.ExpiryTime,
		lastCleanup: time.Now(),
	}
}

func (s *limiterStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expiry > 0 && now.Sub(s.lastCleanup) > s.expiry {
		for k, v := range s.visitors {
			if now.Sub(v.lastSeen) > s.expiry {
				delete(s.visitors, k)
			}
		}
		s.lastCleanup = now
	}

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

func keyFunc(cfg RateLimiterConfig) func(*gin.Context) string {
	if cfg.KeyFunc != nil {
		return cfg.KeyFunc
	}
	switch cfg.LimitType {
	case "path":
		return func(c *gin.Context) string { return c.Request.URL.Path }
	case "combined":
		return func(c *gin.Context) string { return c.ClientIP() + ":" + c.Request.URL.Path }
	}
	return func(c *gin.Context) string { return c.ClientIP() }
}

// RateLimiter 创建限流中间件
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}

	store := newLimiterStore(cfg)
	key := keyFunc(cfg)

	return func(c *gin.Context) {
		if !store.get(key(c), time.Now()).Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "请求频率过高，请稍后再试", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IPRateLimiter 按IP限流
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rate, Burst: burst, ExpiryTime: time.Hour, LimitType: "ip"})
}

// PathRateLimiter 按路径限流
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rate, Burst: burst, ExpiryTime: time.Hour, LimitType: "path"})
}
