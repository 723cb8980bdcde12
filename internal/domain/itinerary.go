// Package domain contains the core data types for the Roteiros API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary represents a single trip plan ("roteiro") owned by one user.
// It is the top-level aggregate; activities belong to an itinerary and have
// no existence outside it.
//
// OwnerID is set once at creation from the authenticated identity and never
// from client input. Budget is nil when unspecified — distinct from zero.
type Itinerary struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      *float64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Activities  []Activity
}
