package v1

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rescuenet_portal/internal/session"
	"golang.org/x/time/rate"
)

const (
	// SessionHeader - заголовок, по которому браузер находит свои контроллеры
	SessionHeader = "X-Session-ID"
	sessionKey    = "session"
)

// SessionResolver выдает сессию по идентификатору из заголовка
type SessionResolver interface {
	Resolve(id string) *session.Session
}

// sessionMiddleware находит или создает сессию и возвращает ее идентификатор в ответе
func sessionMiddleware(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Resolve(c.GetHeader(SessionHeader))
		c.Header(SessionHeader, sess.ID)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// RateLimiterConfig - параметры ограничения запросов к модели
type RateLimiterConfig struct {
	Rate       float64       // запросов в секунду
	Burst      int           // допустимый всплеск
	ExpiryTime time.Duration // через сколько забывать неактивный IP
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter - token bucket на каждый IP клиента
type IPRateLimiter struct {
	cfg RateLimiterConfig

	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	lastSweep time.Time
}

func NewIPRateLimiter(cfg RateLimiterConfig) *IPRateLimiter {
	if cfg.ExpiryTime <= 0 {
		cfg.ExpiryTime = time.Hour
	}
	return &IPRateLimiter{
		cfg:       cfg,
		limiters:  make(map[string]*ipLimiter),
		lastSweep: time.Now(),
	}
}

// Allow сообщает, можно ли пропустить запрос с этого IP
func (l *IPRateLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.cfg.ExpiryTime {
		for key, entry := range l.limiters {
			if now.Sub(entry.lastSeen) > l.cfg.ExpiryTime {
				delete(l.limiters, key)
			}
		}
		l.lastSweep = now
	}

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(l.cfg.Rate), l.cfg.Burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// Middleware отклоняет запросы сверх лимита со статусом 429
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please slow down"})
			return
		}
		c.Next()
	}
}
