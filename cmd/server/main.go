package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gitops-demo/greeting-service/internal/common"
	"github.com/gitops-demo/greeting-service/internal/config"
	"github.com/gitops-demo/greeting-service/internal/greeting"
	"github.com/gitops-demo/greeting-service/internal/metrics"
	appmiddleware "github.com/gitops-demo/greeting-service/internal/middleware"
	"github.com/gitops-demo/greeting-service/internal/respond"
	"github.com/gitops-demo/greeting-service/internal/routes"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		appmiddleware.LogError(context.Background(), "invalid configuration", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		appmiddleware.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr), zap.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// A failed bind must surface as a non-zero exit so the orchestrator
	// restarts the pod instead of routing traffic to a dead process.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		appmiddleware.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		appmiddleware.LogInfo(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appmiddleware.LogError(ctx, "server shutdown error", err)
	}
	appmiddleware.LogInfo(context.Background(), "server exited")
}

// newRouter assembles the full HTTP surface: the greeting route served as a
// plain handler, the probe/version routes behind huma, and the Prometheus
// scrape endpoint.
func newRouter() http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security("/api-docs", "/metrics"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts the client IP from X-Real-IP or X-Forwarded-For.
		// Only meaningful behind the cluster ingress, which is trusted.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		metrics.Middleware(),
		respond.Recoverer(),
	)

	// The greeting bypasses the huma layer: its contract is the bare
	// text literal with no serialization envelope.
	router.Get("/", greeting.Handler)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	cfg := huma.DefaultConfig("Greeting Service API", Version)
	cfg.DocsPath = "/api-docs"
	api := humachi.New(router, cfg)
	routes.Register(api, Version)

	return router
}
