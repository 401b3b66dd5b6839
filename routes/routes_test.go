package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/c13-isotope/landingpage/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		ClientOrigin:    "http://localhost:5173",
		RateLimitMax:    60,
		RateLimitWindow: 60,
		CacheTTL:        300,
		AppEnv:          "test",
	}
}

func serve(t *testing.T, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := serve(t, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestRoot(t *testing.T) {
	w := serve(t, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	w := serve(t, "GET", "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "route not found")
}

func TestMessagePing(t *testing.T) {
	w := serve(t, "GET", "/api/message", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello from API Controller!")
}

// Admin endpoints must reject before touching storage.
func TestAdminBlogRejectedWithoutKey(t *testing.T) {
	t.Setenv("ADMIN_KEY", "sekret")
	w := serve(t, "POST", "/api/blog", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminBlogMisconfigured(t *testing.T) {
	t.Setenv("ADMIN_KEY", "")
	w := serve(t, "POST", "/api/blog", map[string]string{"x-admin-key": "sekret"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORSOriginAllowed(t *testing.T) {
	w := serve(t, "OPTIONS", "/api/message", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSOriginBlocked(t *testing.T) {
	w := serve(t, "OPTIONS", "/api/message", map[string]string{
		"Origin":                        "https://evil.example",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
