package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rsilveira/roteiros-api/internal/domain"
	"github.com/rsilveira/roteiros-api/internal/repo"
)

// ExportService assembles a flat export of an owner's itineraries and activities.
type ExportService struct {
	itineraries repo.ItineraryRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(itineraries repo.ItineraryRepo) *ExportService {
	return &ExportService{itineraries: itineraries}
}

// Export returns one ExportRow per activity across all of the owner's
// itineraries, newest itinerary first. Itineraries with no activities
// contribute one row with empty activity fields.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context, ownerID uuid.UUID) ([]domain.ExportRow, error) {
	itineraries, err := s.itineraries.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, it := range itineraries {
		base := domain.ExportRow{
			ItineraryID: it.ID.String(),
			Destination: it.Destination,
			StartDate:   it.StartDate.Format("2006-01-02"),
			EndDate:     it.EndDate.Format("2006-01-02"),
			Notes:       it.Notes,
		}
		if it.Budget != nil {
			base.Budget = strconv.FormatFloat(*it.Budget, 'f', -1, 64)
		}

		if len(it.Activities) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, a := range it.Activities {
			row := base
			row.ActivityName = a.Name
			row.ActivityDate = formatOptionalDate(a.Date)
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// formatOptionalDate returns the "2006-01-02" representation of t, or "" if t is nil.
func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
