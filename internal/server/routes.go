package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rolematch/internal/handlers/api"
)

// Handlers groups the API handlers mounted by RegisterRoutes.
type Handlers struct {
	Match   *api.MatchHandler
	Mapping *api.MappingHandler
	Header  *api.HeaderHandler
	Import  *api.ImportHandler
	Health  *api.HealthHandler
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(h Handlers) {
	s.App.Get("/healthz", h.Health.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := s.App.Group("/api/v1")

	v1.Post("/match", h.Match.Match)
	v1.Post("/match/batch", h.Match.Batch)

	v1.Post("/mappings", h.Mapping.Confirm)
	v1.Post("/mappings/verify", h.Mapping.Verify)
	v1.Post("/mappings/report", h.Mapping.Report)

	v1.Post("/headers/map", h.Header.Map)

	v1.Post("/imports", h.Import.Create)
}
