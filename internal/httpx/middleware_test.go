package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	middleware := CORSMiddleware(allowedOrigins)
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("Expected CORS header for allowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Errorf("Expected credentials header, got %s", w.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	req.Header.Set("Origin", "http://evil.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("Expected no CORS header for disallowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSMiddleware_OPTIONSRequest(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for OPTIONS request, got %d", w.Code)
	}
	methods := w.Header().Get("Access-Control-Allow-Methods")
	if !strings.Contains(methods, "GET") || !strings.Contains(methods, "POST") {
		t.Errorf("Expected methods header to include GET and POST, got %s", methods)
	}
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if seen == "" {
		t.Error("Expected a generated request id in the request context")
	}
	if got := w.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("Expected response header %q to match context id %q", got, seen)
	}
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	handler := RequestIDMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	req.Header.Set("X-Request-Id", "client-supplied-id")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-Id"); got != "client-supplied-id" {
		t.Errorf("Expected client id to be preserved, got %q", got)
	}
}

func TestRecoveryMiddleware_TurnsPanicInto500(t *testing.T) {
	handler := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after panic, got %d", w.Code)
	}
}

// Recovery runs inside the access log in the server chain, so it sees the
// wrapped writer and the log line still fires on panic.
func TestAccessLogWithRecovery_PanicBeforeWrite(t *testing.T) {
	handler := AccessLogMiddleware(RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after panic, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON error body, got Content-Type %q", ct)
	}
}

func TestAccessLogWithRecovery_PanicAfterWrite(t *testing.T) {
	handler := AccessLogMiddleware(RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))
		panic("boom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	// the wrapped writer already committed 200; recovery must not try to
	// write a second status line
	if w.Code != http.StatusOK {
		t.Errorf("Expected committed 200 to stand, got %d", w.Code)
	}
	if body := w.Body.String(); body != "partial" {
		t.Errorf("Expected committed body to stand, got %q", body)
	}
}

func TestRateLimitMiddleware_Blocks(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	handler := rl.Middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("Expected second request to be limited, got %d", second.Code)
	}
}

func TestRateLimitMiddleware_SeparateClients(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	handler := rl.Middleware(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w1 := httptest.NewRecorder()
	handler.ServeHTTP(w1, first)

	second := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, second)

	if w2.Code != http.StatusOK {
		t.Errorf("Expected a different client to have its own bucket, got %d", w2.Code)
	}
}
