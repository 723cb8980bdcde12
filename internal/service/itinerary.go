// Package service contains the business logic for the Roteiros API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rsilveira/roteiros-api/internal/domain"
	"github.com/rsilveira/roteiros-api/internal/repo"
)

// ItineraryService implements business logic for itinerary operations.
// Every method takes the caller's ownerID as an explicit argument — the
// service never reads identity from ambient state, and ownership supplied in
// request bodies is discarded.
type ItineraryService struct {
	repo repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repo.
func NewItineraryService(r repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{repo: r}
}

// List returns all itineraries owned by ownerID, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Itinerary, error) {
	itineraries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	if itineraries == nil {
		return []domain.Itinerary{}, nil
	}
	return itineraries, nil
}

// Create validates and persists a new itinerary with its activities.
// The OwnerID on the stored record always comes from the ownerID argument,
// regardless of what the input carries.
// Returns domain.ErrValidation if input violates business rules.
func (s *ItineraryService) Create(ctx context.Context, ownerID uuid.UUID, it domain.Itinerary) (domain.Itinerary, error) {
	if err := validateItinerary(it); err != nil {
		return domain.Itinerary{}, err
	}
	it.OwnerID = ownerID

	created, err := s.repo.Create(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return created, nil
}

// Replace validates and persists a full rewrite of an existing itinerary:
// scalar fields are overwritten and the activity collection is replaced
// wholesale. Returns domain.ErrValidation for invalid input and
// domain.ErrNotFound if the itinerary does not exist under ownerID.
func (s *ItineraryService) Replace(ctx context.Context, ownerID, id uuid.UUID, it domain.Itinerary) (domain.Itinerary, error) {
	if err := validateItinerary(it); err != nil {
		return domain.Itinerary{}, err
	}
	it.ID = id
	it.OwnerID = ownerID

	updated, err := s.repo.Replace(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Replace: %w", err)
	}
	return updated, nil
}

// Delete removes an itinerary and, by cascade, all its activities.
// Returns domain.ErrNotFound if the itinerary does not exist under ownerID —
// including when it was already deleted.
func (s *ItineraryService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// validateItinerary enforces business rules common to Create and Replace.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - Start and end dates are required; the end date must not be before the
//     start date. Same-day trips are allowed.
//   - Budget, when specified, must not be negative. Nil means "unspecified"
//     and is always valid.
//   - Every activity must have a non-empty name.
func validateItinerary(it domain.Itinerary) error {
	if strings.TrimSpace(it.Destination) == "" {
		return fmt.Errorf("%w: destino é obrigatório", domain.ErrValidation)
	}
	if it.StartDate.IsZero() || it.EndDate.IsZero() {
		return fmt.Errorf("%w: dataInicio e dataFim são obrigatórias", domain.ErrValidation)
	}
	if it.EndDate.Before(it.StartDate) {
		return fmt.Errorf("%w: dataFim não pode ser anterior à dataInicio", domain.ErrValidation)
	}
	if it.Budget != nil && *it.Budget < 0 {
		return fmt.Errorf("%w: orcamento não pode ser negativo", domain.ErrValidation)
	}
	for i, a := range it.Activities {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("%w: atividade %d: nome é obrigatório", domain.ErrValidation, i+1)
		}
	}
	return nil
}
