package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterBlocksAfterBudget(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	r := gin.New()
	r.GET("/login", rl.Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("second request: status = %d, want 200", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("third request: status = %d, want 429", code)
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	r := gin.New()
	r.GET("/login", rl.Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	do := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first ip: status = %d, want 200", code)
	}
	if code := do("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("second ip should have its own budget: status = %d, want 200", code)
	}
}
