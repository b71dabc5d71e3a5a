package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abidnoul/portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(ErrorBoundary())
	return r
}

func TestErrorBoundaryNotFoundJSON(t *testing.T) {
	r := newEngine()
	r.GET("/api/things/:id", func(c *gin.Context) {
		c.Error(service.ErrNotFound)
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/things/7", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error":"not found"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestErrorBoundaryPanicJSON(t *testing.T) {
	r := newEngine()
	r.GET("/api/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "kaboom") {
		t.Error("panic detail leaked to the client")
	}
	if !strings.Contains(body, `"request_id"`) {
		t.Errorf("response missing request id: %s", body)
	}
}

func TestErrorBoundaryHTMLErrorPage(t *testing.T) {
	r := newEngine()
	r.LoadHTMLGlob("../../web/templates/*.html")
	r.GET("/missing", func(c *gin.Context) {
		c.Error(service.ErrNotFound)
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Errorf("error page does not show the status: %s", w.Body.String())
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := newEngine()
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("no request id generated")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Body.String(); got != "abc-123" {
		t.Errorf("expected supplied id to pass through, got %q", got)
	}
	if w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Error("supplied id not echoed in the response header")
	}
}

func TestRateLimiterRejectsBeyondBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl := NewRateLimiter(1, 2)
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request limited, got %v", codes)
	}

	// A different client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected fresh client to pass, got %d", w.Code)
	}
}
