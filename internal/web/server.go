package web

import (
	"net/http"

	"github.com/halc8312/shinwa-sub002/internal/store"
	"github.com/halc8312/shinwa-sub002/internal/travel"
)

// Server exposes the travel engine as a JSON API over the stored
// project data.
type Server struct {
	Store      *store.Store
	Addr       string
	Thresholds travel.Thresholds
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/locations/resolve", s.handleResolve)
	mux.HandleFunc("GET /api/travel/validate", s.handleValidate)
	mux.HandleFunc("GET /api/travel/simulate", s.handleSimulate)
	mux.HandleFunc("GET /api/transports", s.handleTransports)
	mux.HandleFunc("PUT /api/transports", s.handleSaveTransports)
	mux.HandleFunc("POST /api/transports/extract", s.handleExtractTransports)
	mux.HandleFunc("GET /api/characters/{id}/transports", s.handleCharacterTransports)
	mux.HandleFunc("PUT /api/characters/{id}/transports", s.handleUpdateCharacterTransports)

	return mux
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Addr, s.Handler())
}
