package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitors_AllowRespectsBurst(t *testing.T) {
	v := NewVisitors(1, 2, time.Minute)
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return fixed }

	assert.True(t, v.Allow("10.0.0.1"))
	assert.True(t, v.Allow("10.0.0.1"))
	assert.False(t, v.Allow("10.0.0.1"))

	// other clients have their own bucket
	assert.True(t, v.Allow("10.0.0.2"))
}

func TestVisitors_Cleanup(t *testing.T) {
	v := NewVisitors(10, 10, time.Minute)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return current }

	v.Allow("a")
	current = current.Add(30 * time.Second)
	v.Allow("b")
	current = current.Add(45 * time.Second)

	require.Equal(t, 1, v.Cleanup())
	assert.Equal(t, 1, v.Len())
}

func TestMiddleware_TooManyRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	v := NewVisitors(1, 1, time.Minute)
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return fixed }

	router := gin.New()
	router.Use(Middleware(v))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
