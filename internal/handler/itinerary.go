package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rsilveira/roteiros-api/internal/auth"
	"github.com/rsilveira/roteiros-api/internal/domain"
	"github.com/rsilveira/roteiros-api/internal/httpx"
	"github.com/rsilveira/roteiros-api/internal/validator"
)

// dateLayout is the wire format for all calendar dates.
const dateLayout = "2006-01-02"

// --- wire DTOs --------------------------------------------------------------
// Field names follow the product's JSON contract (Portuguese keys).

// itineraryRequest is the body of POST and PUT /api/roteiros.
// PUT additionally carries the id of the itinerary being replaced.
// Orcamento arrives as a numeric string straight from the form field; an
// empty string means "unspecified" and is distinct from "0".
type itineraryRequest struct {
	ID         string            `json:"id,omitempty"`
	Destino    string            `json:"destino" validate:"required"`
	DataInicio string            `json:"dataInicio" validate:"required"`
	DataFim    string            `json:"dataFim" validate:"required"`
	Orcamento  string            `json:"orcamento,omitempty"`
	Notas      string            `json:"notas,omitempty"`
	Atividades []activityRequest `json:"atividades"`
}

type activityRequest struct {
	Nome string `json:"nome" validate:"required"`
	Data string `json:"data,omitempty"`
}

// deleteRequest is the body of DELETE /api/roteiros.
type deleteRequest struct {
	ID string `json:"id" validate:"required"`
}

type itineraryResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"userId"`
	Destino    string             `json:"destino"`
	DataInicio string             `json:"dataInicio"`
	DataFim    string             `json:"dataFim"`
	Orcamento  *float64           `json:"orcamento"`
	Notas      string             `json:"notas,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	Atividades []activityResponse `json:"atividades"`
}

type activityResponse struct {
	ID   string  `json:"id"`
	Nome string  `json:"nome"`
	Data *string `json:"data,omitempty"`
}

// --- handlers ---------------------------------------------------------------

// ListItineraries handles GET /api/roteiros.
// Returns all of the caller's itineraries, activities populated, newest first.
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	itineraries, err := s.itineraries.List(r.Context(), ownerID)
	if err != nil {
		s.storageError(w, r, msgListFailed, err)
		return
	}

	out := make([]itineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		out = append(out, itineraryToResponse(it))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// CreateItinerary handles POST /api/roteiros.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	it, err := decodeItineraryRequest(r)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := s.itineraries.Create(r.Context(), ownerID, it)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			httpx.JSONError(w, http.StatusUnprocessableEntity, validationMessage(err))
			return
		}
		s.storageError(w, r, msgCreateFailed, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, itineraryToResponse(created))
}

// UpdateItinerary handles PUT /api/roteiros.
// The entire itinerary is rewritten: scalar fields are overwritten and the
// activity collection is fully replaced by the one in the request body.
func (s *Server) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req itineraryRequest
	it, err := decodeInto(r, &req)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// A malformed or unknown id is answered exactly like a mismatched owner.
	id, err := uuid.Parse(req.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
		return
	}

	updated, err := s.itineraries.Replace(r.Context(), ownerID, id, it)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, domain.ErrValidation):
			httpx.JSONError(w, http.StatusUnprocessableEntity, validationMessage(err))
		default:
			s.storageError(w, r, msgUpdateFailed, err)
		}
		return
	}

	httpx.JSON(w, http.StatusOK, itineraryToResponse(updated))
}

// DeleteItinerary handles DELETE /api/roteiros.
// Deleting an id that no longer exists — including a second delete of the
// same id — answers 404.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "corpo da requisição inválido")
		return
	}
	if err := validator.Validate(req); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, validator.Message(err))
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := s.itineraries.Delete(r.Context(), ownerID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, msgNotFound)
			return
		}
		s.storageError(w, r, msgDeleteFailed, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"message": msgDeleted})
}

// --- mapping helpers --------------------------------------------------------

// decodeItineraryRequest decodes and normalizes a POST body.
func decodeItineraryRequest(r *http.Request) (domain.Itinerary, error) {
	var req itineraryRequest
	return decodeInto(r, &req)
}

// decodeInto decodes the request body into req and converts it to a
// domain.Itinerary. All returned errors are safe to show to the client.
func decodeInto(r *http.Request, req *itineraryRequest) (domain.Itinerary, error) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return domain.Itinerary{}, errors.New("corpo da requisição inválido")
	}
	if err := validator.Validate(*req); err != nil {
		return domain.Itinerary{}, errors.New(validator.Message(err))
	}
	return requestToItinerary(*req)
}

// requestToItinerary normalizes the wire DTO into a domain.Itinerary.
// Malformed dates and budget values are explicit validation failures here —
// they must never propagate as opaque parse errors.
func requestToItinerary(req itineraryRequest) (domain.Itinerary, error) {
	start, err := time.Parse(dateLayout, req.DataInicio)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("dataInicio inválida: %q", req.DataInicio)
	}
	end, err := time.Parse(dateLayout, req.DataFim)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("dataFim inválida: %q", req.DataFim)
	}

	it := domain.Itinerary{
		Destination: req.Destino,
		StartDate:   start,
		EndDate:     end,
		Notes:       req.Notas,
	}

	if v := strings.TrimSpace(req.Orcamento); v != "" {
		budget, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("orcamento inválido: %q", req.Orcamento)
		}
		it.Budget = &budget
	}

	it.Activities = make([]domain.Activity, 0, len(req.Atividades))
	for _, a := range req.Atividades {
		act := domain.Activity{Name: a.Nome}
		if a.Data != "" {
			d, err := time.Parse(dateLayout, a.Data)
			if err != nil {
				return domain.Itinerary{}, fmt.Errorf("data da atividade inválida: %q", a.Data)
			}
			act.Date = &d
		}
		it.Activities = append(it.Activities, act)
	}
	return it, nil
}

// itineraryToResponse converts a domain.Itinerary into the wire DTO.
func itineraryToResponse(it domain.Itinerary) itineraryResponse {
	resp := itineraryResponse{
		ID:         it.ID.String(),
		UserID:     it.OwnerID.String(),
		Destino:    it.Destination,
		DataInicio: it.StartDate.Format(dateLayout),
		DataFim:    it.EndDate.Format(dateLayout),
		Orcamento:  it.Budget,
		Notas:      it.Notes,
		CreatedAt:  it.CreatedAt,
		Atividades: make([]activityResponse, 0, len(it.Activities)),
	}
	for _, a := range it.Activities {
		ar := activityResponse{ID: a.ID.String(), Nome: a.Name}
		if a.Date != nil {
			d := a.Date.Format(dateLayout)
			ar.Data = &d
		}
		resp.Atividades = append(resp.Atividades, ar)
	}
	return resp
}
