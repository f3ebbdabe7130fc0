// internal/handler/property.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/repository"
	"github.com/estateflow/crm/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	propertyService *service.PropertyService
}

func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

type PropertyResponse struct {
	BaseResponse
	Property *model.Property `json:"property"`
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var input service.CreatePropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	property, err := h.propertyService.Create(r.Context(), p, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, PropertyResponse{BaseResponse{Ok: true}, property})
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.propertyService.GetByID(r.Context(), p, id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, PropertyResponse{BaseResponse{Ok: true}, property})
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var filter repository.PropertyFilter
	q := r.URL.Query()
	if raw := q.Get("agent_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid agent id")
			return
		}
		filter.AgentID = &id
	}
	if raw := q.Get("city"); raw != "" {
		filter.City = &raw
	}
	if raw := q.Get("status"); raw != "" {
		status := model.PropertyStatus(raw)
		filter.Status = &status
	}

	properties, err := h.propertyService.List(r.Context(), p, filter)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		Properties []*model.Property `json:"properties"`
	}{BaseResponse{Ok: true}, properties})
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	var input service.UpdatePropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	property, err := h.propertyService.Update(r.Context(), p, id, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, PropertyResponse{BaseResponse{Ok: true}, property})
}
