// Package handler implements the HTTP handlers for the Roteiros API.
// Handlers decode the Portuguese wire DTOs, delegate to the service layer,
// and map sentinel errors to HTTP status codes. Methods are split into
// domain-specific files (itinerary.go, export.go, health.go) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rsilveira/roteiros-api/internal/domain"
)

// ItineraryServicer defines the business operations the itinerary handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type ItineraryServicer interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Itinerary, error)
	Create(ctx context.Context, ownerID uuid.UUID, it domain.Itinerary) (domain.Itinerary, error)
	Replace(ctx context.Context, ownerID, id uuid.UUID, it domain.Itinerary) (domain.Itinerary, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, ownerID uuid.UUID) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by all handlers.
// Wire it in main.go via Routes.
type Server struct {
	itineraries ItineraryServicer
	export      ExportServicer
	log         *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraries ItineraryServicer, export ExportServicer, log *slog.Logger) *Server {
	return &Server{itineraries: itineraries, export: export, log: log}
}

// Routes registers the authenticated API routes on r.
// The caller is responsible for wrapping r with the auth middleware — every
// handler here assumes auth.UserIDFromCtx succeeds for well-formed requests.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.ListItineraries)
	r.Post("/", s.CreateItinerary)
	r.Put("/", s.UpdateItinerary)
	r.Delete("/", s.DeleteItinerary)
	r.Get("/export", s.ExportItineraries)
}
