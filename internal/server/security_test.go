package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	handler := AuthMiddleware(apiKey, nil, NewActivityDetector(0, 0))(okHandler())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"valid key", apiKey, "/api/v1/items", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/items", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/items", http.StatusUnauthorized},
		{"public healthz", "", "/healthz", http.StatusOK},
		{"public metrics", "", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_EmptyKeyDisablesAuth(t *testing.T) {
	handler := AuthMiddleware("", nil, NewActivityDetector(0, 0))(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/items", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_CountsFailures(t *testing.T) {
	detector := NewActivityDetector(0, 0)
	handler := AuthMiddleware("key", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/v1/items", nil)
		req.RemoteAddr = "10.1.1.1:5000"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.1.1.1"])
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewActivityDetector(3, time.Minute)
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	send := func(ip string) int {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, send("192.168.1.100"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.100"))
	assert.Equal(t, http.StatusOK, send("192.168.1.101"), "limits are per IP")

	detector.mu.Lock()
	assert.Equal(t, 4, detector.requestCountByIP["192.168.1.100"])
	detector.mu.Unlock()
}

func TestActivityDetector_WindowReset(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := NewActivityDetector(1, time.Minute)
	detector.now = func() time.Time { return now }
	detector.lastResetTime = now

	assert.True(t, detector.RecordRequest("ip"))
	assert.False(t, detector.RecordRequest("ip"))

	now = now.Add(2 * time.Minute)
	assert.True(t, detector.RecordRequest("ip"), "new window starts fresh")
}

func TestNewActivityDetector_Defaults(t *testing.T) {
	d := NewActivityDetector(-1, 0)
	assert.Equal(t, DefaultRateLimit, d.limit)
	assert.Equal(t, DefaultRateLimitWindow, d.window)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "1.2.3.4:80", "", nil, "1.2.3.4"},
		{"untrusted forwarded header ignored", "1.2.3.4:80", "9.9.9.9", nil, "1.2.3.4"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "7.7.7.7, 8.8.8.8", []string{"10.0.0.1"}, "8.8.8.8"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}
