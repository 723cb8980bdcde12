package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsilveira/roteiros-api/internal/domain"
	"github.com/rsilveira/roteiros-api/internal/service"
)

func exportFixture() []domain.Itinerary {
	budget := 1500.50
	d := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return []domain.Itinerary{
		{
			ID:          uuid.New(),
			Destination: "Paris",
			StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			Budget:      &budget,
			Notes:       "lua de mel",
			Activities: []domain.Activity{
				{ID: uuid.New(), Name: "Museum", Date: &d},
				{ID: uuid.New(), Name: "Torre Eiffel"},
			},
		},
		{
			ID:          uuid.New(),
			Destination: "Lisboa",
			StartDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
			Activities:  []domain.Activity{},
		},
	}
}

func TestExportService_Export_OneRowPerActivity(t *testing.T) {
	itineraries := exportFixture()
	r := &mockItineraryRepo{
		listByOwner: func(_ context.Context, _ uuid.UUID) ([]domain.Itinerary, error) {
			return itineraries, nil
		},
	}
	svc := service.NewExportService(r)

	rows, err := svc.Export(context.Background(), uuid.New())

	require.NoError(t, err)
	// Two activities on Paris + one placeholder row for activity-less Lisboa.
	require.Len(t, rows, 3)

	assert.Equal(t, "Paris", rows[0].Destination)
	assert.Equal(t, "Museum", rows[0].ActivityName)
	assert.Equal(t, "2025-06-02", rows[0].ActivityDate)
	assert.Equal(t, "1500.5", rows[0].Budget)

	assert.Equal(t, "Torre Eiffel", rows[1].ActivityName)
	assert.Empty(t, rows[1].ActivityDate, "dateless activity exports an empty date")

	assert.Equal(t, "Lisboa", rows[2].Destination)
	assert.Empty(t, rows[2].ActivityName, "activity-less itinerary still contributes a row")
	assert.Empty(t, rows[2].Budget, "unspecified budget exports as empty, not 0")
}

func TestExportService_Export_Empty(t *testing.T) {
	r := &mockItineraryRepo{
		listByOwner: func(_ context.Context, _ uuid.UUID) ([]domain.Itinerary, error) {
			return nil, nil
		},
	}
	svc := service.NewExportService(r)

	rows, err := svc.Export(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Export_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockItineraryRepo{
		listByOwner: func(_ context.Context, _ uuid.UUID) ([]domain.Itinerary, error) {
			return nil, repoErr
		},
	}
	svc := service.NewExportService(r)

	_, err := svc.Export(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repoErr)
}
