// Package handler — export.go implements GET /api/roteiros/export.
// Returns the caller's itineraries and activities as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/rsilveira/roteiros-api/internal/auth"
	"github.com/rsilveira/roteiros-api/internal/domain"
	"github.com/rsilveira/roteiros-api/internal/httpx"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"roteiro_id", "destino", "data_inicio", "data_fim",
	"orcamento", "notas", "atividade", "data_atividade",
}

// exportRowResponse is the JSON shape of one export row.
type exportRowResponse struct {
	RoteiroID     string `json:"roteiroId"`
	Destino       string `json:"destino"`
	DataInicio    string `json:"dataInicio"`
	DataFim       string `json:"dataFim"`
	Orcamento     string `json:"orcamento,omitempty"`
	Notas         string `json:"notas,omitempty"`
	Atividade     string `json:"atividade,omitempty"`
	DataAtividade string `json:"dataAtividade,omitempty"`
}

// ExportItineraries handles GET /api/roteiros/export.
// It returns one flat row per activity; itineraries without activities
// contribute one row with empty activity columns.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportItineraries(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	rows, err := s.export.Export(r.Context(), ownerID)
	if err != nil {
		s.storageError(w, r, msgExportFailed, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]exportRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRowResponse{
			RoteiroID:     row.ItineraryID,
			Destino:       row.Destination,
			DataInicio:    row.StartDate,
			DataFim:       row.EndDate,
			Orcamento:     row.Budget,
			Notas:         row.Notes,
			Atividade:     row.ActivityName,
			DataAtividade: row.ActivityDate,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}

// writeCSV encodes the rows as CSV with a fixed header row.
// The full body is buffered so Content-Length can be set before writing.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			r.ItineraryID,
			r.Destination,
			r.StartDate,
			r.EndDate,
			r.Budget,
			r.Notes,
			r.ActivityName,
			r.ActivityDate,
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="roteiros.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
