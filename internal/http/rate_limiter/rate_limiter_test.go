package rate_limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddlewareLimitsPerClient(t *testing.T) {
	l := New(0.001, 2)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/sales", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	for i := range 2 {
		if code := do("10.0.0.1:1234"); code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, code)
		}
	}
	if code := do("10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
	if code := do("10.0.0.2:1234"); code != http.StatusNoContent {
		t.Errorf("expected other client to pass, got %d", code)
	}
}

func TestCleanup(t *testing.T) {
	l := New(1, 1)
	l.GetVisitor("a")
	l.visitors["a"].lastSeen = time.Now().Add(-time.Hour)
	l.GetVisitor("b")

	l.cleanup(visitorTTL)

	if _, ok := l.visitors["a"]; ok {
		t.Error("expected idle visitor to be removed")
	}
	if _, ok := l.visitors["b"]; !ok {
		t.Error("expected active visitor to stay")
	}

	l.CleanupAllVisitors()
	if len(l.visitors) != 0 {
		t.Error("expected all visitors removed")
	}
}
