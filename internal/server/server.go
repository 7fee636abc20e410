// Package server exposes the computed dashboard views over a small JSON
// API. The renderer (web frontend) owns pixels, charts, and the color
// legend; this layer only hands over normalized numbers.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"MarketWarRoom/internal/dashboard"
)

// Server is the HTTP API server for the dashboard.
type Server struct {
	httpServer *http.Server
}

// NewServer registers all routes and wraps them in the logging middleware.
func NewServer(port int, asm *dashboard.Assembler, symbols []string) *Server {
	h := &handlers{asm: asm, symbols: symbols}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.health)
	mux.HandleFunc("GET /api/symbols", h.listSymbols)
	mux.HandleFunc("GET /api/symbols/{symbol}/analysis", h.symbolAnalysis)
	mux.HandleFunc("GET /api/sectors/heatmap", h.sectorHeatmap)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      logging(mux),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
	}
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
