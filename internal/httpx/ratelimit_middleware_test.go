package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimitMiddleware(0.001, 2)
	t.Cleanup(rl.Stop)
	handler := rl.Middleware(okHandler())

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/library", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1, 172.16.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// separate client keeps its own budget
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}
