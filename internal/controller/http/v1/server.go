package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/document_ingest/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, csv *CsvHandler, pdf *PdfHandler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(csv, pdf),
		},
	}
}

func NewRouter(csv *CsvHandler, pdf *PdfHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/csv", func(r chi.Router) {
			r.Post("/upload", csv.Upload)
			r.Get("/status/{id}", csv.Status)
			r.Get("/records/{id}", csv.Records)
		})

		r.Route("/pdf", func(r chi.Router) {
			r.Post("/upload", pdf.Upload)
			r.Get("/status/{id}", pdf.Status)
			r.Get("/result/{id}", pdf.Result)
			r.Get("/financial/{id}", pdf.Financial)
			r.Get("/latest", pdf.Latest)
			r.Post("/annotate", pdf.Annotate)
		})
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
