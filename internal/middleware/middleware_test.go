package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestChain_AppliesInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(okHandler(), mw("first"), mw("second"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if captured == "" {
		t.Error("expected a generated request ID in context")
	}
	if rec.Header().Get("X-Request-ID") != captured {
		t.Error("expected request ID echoed in response header")
	}
}

func TestRequestID_PreservesProvided(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if captured != "client-id-1" {
		t.Errorf("expected client-id-1, got %s", captured)
	}
}

func TestRecovery_PanicReturns500(t *testing.T) {
	t.Parallel()

	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json, got %s", ct)
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"https://app.placecard.app"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.placecard.app")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://app.placecard.app" {
		t.Error("expected origin to be allowed")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"https://app.placecard.app"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no allow-origin header for unknown origin")
	}
}

func TestRateLimit_ExhaustionReturns429(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(RateLimitConfig{
		Rate:   2,
		Window: time.Minute,
		Burst:  1,
	})
	defer limiter.Stop()

	handler := RateLimit(limiter)(okHandler())

	var last int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:55555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		last = rec.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after bucket exhausted, got %d", last)
	}
}

func TestRateLimit_SeparateClients(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(RateLimitConfig{
		Rate:   1,
		Window: time.Minute,
		Burst:  0,
	})
	defer limiter.Stop()

	handler := RateLimit(limiter)(okHandler())

	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	req1.RemoteAddr = "10.0.0.1:1111"
	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, req1)

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "10.0.0.2:2222"
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req2)

	if rec1.Code != http.StatusOK || rec2.Code != http.StatusOK {
		t.Errorf("expected both clients allowed, got %d and %d", rec1.Code, rec2.Code)
	}
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{TTL: time.Minute})
	defer store.Stop()

	var calls int32
	handler := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"guest-1"}}`))
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/guests/move",
			bytes.NewBufferString(`{"guest_ids":["g1"],"table_id":"t1"}`))
		req.RemoteAddr = "10.0.0.1:3333"
		req.Header.Set("Idempotency-Key", "retry-key-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	second := send()

	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("expected handler to run once, ran %d times", calls)
	}
	if second.Code != first.Code {
		t.Errorf("expected replayed status %d, got %d", first.Code, second.Code)
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Error("expected replay marker header")
	}
	if second.Body.String() != first.Body.String() {
		t.Error("expected identical replayed body")
	}
}

func TestIdempotency_DifferentBodiesNotShared(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{TTL: time.Minute})
	defer store.Stop()

	var calls int32
	handler := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))

	for _, body := range []string{`{"table_id":"t1"}`, `{"table_id":"t2"}`} {
		req := httptest.NewRequest(http.MethodPost, "/v1/guests/move", bytes.NewBufferString(body))
		req.RemoteAddr = "10.0.0.1:4444"
		req.Header.Set("Idempotency-Key", "same-key")
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected both distinct requests to run, ran %d times", calls)
	}
}

func TestIdempotency_ConcurrentRetriesWaitForFirst(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{TTL: time.Minute})
	defer store.Stop()

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	handler := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(entered)
			<-release
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"guest:1"}}`))
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/guests/move",
			bytes.NewBufferString(`{"guest_ids":["guest:1"],"table_id":"table:1"}`))
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("Idempotency-Key", "slow-key")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() { firstDone <- send() }()
	<-entered

	// Retries arriving while the first attempt is still in flight must wait
	// for its outcome instead of running the mutation again.
	var wg sync.WaitGroup
	retries := make([]*httptest.ResponseRecorder, 3)
	for i := range retries {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			retries[i] = send()
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)

	first := <-firstDone
	wg.Wait()

	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
	for i, rec := range retries {
		if rec.Code != first.Code || rec.Body.String() != first.Body.String() {
			t.Errorf("retry %d: expected replayed response, got %d %q", i, rec.Code, rec.Body.String())
		}
	}
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	t.Parallel()

	store := NewIdempotencyStore(IdempotencyConfig{TTL: time.Minute})
	defer store.Stop()

	var calls int32
	handler := Idempotency(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/guests/move", bytes.NewBufferString(`{}`))
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected no caching without key, ran %d times", calls)
	}
}
