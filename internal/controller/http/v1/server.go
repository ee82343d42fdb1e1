package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kosolapovrs/deal_importer/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	cfg config.HTTP,
	orchestrator ImportOrchestrator,
	imports ImportsRepository,
	reports ReportGenerator,
) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := NewImportsHandler(orchestrator, imports, reports)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/storage/{provider}/files/{file_id}/import", h.ImportFile)
		r.Get("/deals/{deal_id}/imports", h.ListDealImports)
		r.Get("/imports/{import_id}/report", h.ImportReport)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      r,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
