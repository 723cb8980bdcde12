package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity represents a single named sub-item ("atividade") of an itinerary.
// Date is nil when the activity is not pinned to a specific day.
// Activities are cascade-deleted with their parent itinerary and fully
// replaced — never merged — on every itinerary update.
type Activity struct {
	ID          uuid.UUID
	ItineraryID uuid.UUID
	Name        string
	Date        *time.Time
}
