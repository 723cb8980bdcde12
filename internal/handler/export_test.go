package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsilveira/roteiros-api/internal/domain"
)

func exportRows() []domain.ExportRow {
	return []domain.ExportRow{
		{
			ItineraryID:  uuid.New().String(),
			Destination:  "Paris",
			StartDate:    "2025-06-01",
			EndDate:      "2025-06-10",
			Budget:       "1500.5",
			Notes:        "lua de mel",
			ActivityName: "Museum",
			ActivityDate: "2025-06-02",
		},
		{
			ItineraryID: uuid.New().String(),
			Destination: "Lisboa",
			StartDate:   "2025-07-01",
			EndDate:     "2025-07-05",
		},
	}
}

func TestExportItineraries_200_JSON(t *testing.T) {
	owner := uuid.New()
	svc := &mockExportServicer{
		export: func(_ context.Context, gotOwner uuid.UUID) ([]domain.ExportRow, error) {
			assert.Equal(t, owner, gotOwner, "export must be scoped to the caller")
			return exportRows(), nil
		},
	}

	req := authed(httptest.NewRequest(http.MethodGet, "/api/roteiros/export", nil), owner)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Paris", resp[0]["destino"])
	assert.Equal(t, "Museum", resp[0]["atividade"])
	assert.Equal(t, "Lisboa", resp[1]["destino"])
	_, hasAtividade := resp[1]["atividade"]
	assert.False(t, hasAtividade, "empty activity columns are omitted in JSON")
}

func TestExportItineraries_200_CSV(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) {
			return exportRows(), nil
		},
	}

	req := authed(httptest.NewRequest(http.MethodGet, "/api/roteiros/export?format=csv", nil), uuid.New())
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "roteiros.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + two rows")
	assert.Equal(t, "roteiro_id", records[0][0])
	assert.Equal(t, "Paris", records[1][1])
	assert.Equal(t, "Museum", records[1][6])
	assert.Equal(t, "", records[2][6], "activity-less itinerary has an empty activity column")
}

func TestExportItineraries_401_NoSession(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) {
			t.Fatal("service must not be called without authentication")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/roteiros/export", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExportItineraries_500_StorageError(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) {
			return nil, fmt.Errorf("query failed")
		},
	}

	req := authed(httptest.NewRequest(http.MethodGet, "/api/roteiros/export", nil), uuid.New())
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Erro ao exportar roteiros", errorMessage(t, rec))
}
