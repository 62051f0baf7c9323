// Package routes registers the operational API endpoints: Kubernetes probe
// routes and the build version route. The greeting itself is served as a
// plain handler in cmd/server, outside the huma layer, so its body stays a
// bare text literal.
package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/gitops-demo/greeting-service/internal/middleware"
)

// StatusData models the payload for the probe routes.
type StatusData struct {
	Status string `json:"status" doc:"Probe status" example:"ok"`
}

// StatusOutput is the response wrapper for the probe endpoints.
type StatusOutput struct {
	Body StatusData
}

// VersionData models the payload for the version route.
type VersionData struct {
	Version string `json:"version" doc:"Build version" example:"1.2.3"`
}

// VersionOutput is the response wrapper for the version endpoint.
type VersionOutput struct {
	Body VersionData
}

// Register wires the probe and version routes into the provided API router.
func Register(api huma.API, version string) {
	registerProbes(api)
	registerVersion(api, version)
}

func registerProbes(api huma.API) {
	huma.Get(api, "/healthz", func(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
		return &StatusOutput{Body: StatusData{Status: "ok"}}, nil
	})

	// The service has no dependencies to wait on, so readiness equals
	// liveness. The route exists because the chart's readinessProbe
	// references it.
	huma.Get(api, "/readyz", func(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
		return &StatusOutput{Body: StatusData{Status: "ok"}}, nil
	})
}

func registerVersion(api huma.API, version string) {
	huma.Get(api, "/version", func(ctx context.Context, _ *struct{}) (*VersionOutput, error) {
		appmiddleware.LogInfo(ctx, "version requested", zap.String("version", version))
		return &VersionOutput{Body: VersionData{Version: version}}, nil
	})
}
