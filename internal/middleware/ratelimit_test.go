package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter(t *testing.T) {
	t.Run("allows burst then rejects", func(t *testing.T) {
		l := NewIPRateLimiter(3)

		for i := 0; i < 3; i++ {
			assert.True(t, l.Allow("10.0.0.1"), "request %d", i)
		}
		assert.False(t, l.Allow("10.0.0.1"))
	})

	t.Run("buckets are per ip", func(t *testing.T) {
		l := NewIPRateLimiter(1)

		assert.True(t, l.Allow("10.0.0.1"))
		assert.False(t, l.Allow("10.0.0.1"))
		assert.True(t, l.Allow("10.0.0.2"))
	})

	t.Run("refills over time", func(t *testing.T) {
		l := NewIPRateLimiter(1)
		now := time.Now()
		l.now = func() time.Time { return now }

		assert.True(t, l.Allow("10.0.0.1"))
		assert.False(t, l.Allow("10.0.0.1"))

		now = now.Add(time.Minute)
		assert.True(t, l.Allow("10.0.0.1"))
	})

	t.Run("drops idle buckets", func(t *testing.T) {
		l := NewIPRateLimiter(1)
		now := time.Now()
		l.now = func() time.Time { return now }

		l.Allow("10.0.0.1")
		now = now.Add(2 * limiterTTL)
		l.Allow("10.0.0.2")

		assert.Len(t, l.buckets, 1)
	})
}

func TestRateLimit(t *testing.T) {
	router := gin.New()
	router.POST("/forgot", RateLimit(NewIPRateLimiter(1)), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/forgot", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusAccepted, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}
