package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	if LoggerFromContext(context.Background()) == nil {
		t.Fatal("expected fallback logger, got nil")
	}
	if LoggerFromContext(nil) == nil { //nolint:staticcheck // nil context fallback is intentional
		t.Fatal("expected fallback logger for nil context, got nil")
	}
}

func TestLoggerFromContextReturnsRequestLogger(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ctx := contextWithLogger(context.Background(), logger)
	if LoggerFromContext(ctx) != logger {
		t.Fatal("expected request-scoped logger from context")
	}
}

func TestRequestLoggerAttachesRequestID(t *testing.T) {
	var got *zap.Logger
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LoggerFromContext(r.Context())
	})

	h := RequestID()(RequestLogger()(inner))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "log-test-id")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("expected logger in request context")
	}
}

func TestAccessLoggerRecordsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	h := AccessLogger()(inner)
	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req = req.WithContext(contextWithLogger(req.Context(), logger))
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one access log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != http.MethodGet {
		t.Errorf("expected method GET, got %v", fields["method"])
	}
	if fields["path"] != "/teapot" {
		t.Errorf("expected path /teapot, got %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("expected status 418, got %v", fields["status"])
	}
	if fields["bytes"] != int64(len("short")) {
		t.Errorf("expected 5 bytes written, got %v", fields["bytes"])
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogError(ctx, "boom", context.DeadlineExceeded)

	entries := logs.FilterMessage("boom").All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["error"] != context.DeadlineExceeded.Error() {
		t.Errorf("expected error field, got %v", entries[0].ContextMap())
	}
}
