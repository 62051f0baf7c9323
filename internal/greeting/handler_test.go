package greeting

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestHandlerReturnsFixedGreeting(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	Handler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != Body {
		t.Fatalf("expected body %q, got %q", Body, body)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected text/plain content type, got %s", ct)
	}
}

func TestHandlerIsIdempotent(t *testing.T) {
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp := httptest.NewRecorder()
		Handler(resp, req)

		if resp.Code != http.StatusOK || resp.Body.String() != Body {
			t.Fatalf("call %d: got %d %q", i, resp.Code, resp.Body.String())
		}
	}
}

func TestHandlerIgnoresRequestShape(t *testing.T) {
	// The handler has no path, method, or header constraints of its own;
	// routing policy lives in the router.
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPost} {
		req := httptest.NewRequest(method, "/anything", nil)
		req.Header.Set("Accept", "application/xml")
		resp := httptest.NewRecorder()
		Handler(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", method, resp.Code)
		}
	}
}

func TestHandlerUnderConcurrentLoad(t *testing.T) {
	const workers = 100

	var wg sync.WaitGroup
	results := make([]string, workers)
	codes := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp := httptest.NewRecorder()
			Handler(resp, req)
			results[i] = resp.Body.String()
			codes[i] = resp.Code
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if codes[i] != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, codes[i])
		}
		if results[i] != Body {
			t.Fatalf("request %d: expected %q, got %q", i, Body, results[i])
		}
	}
}
