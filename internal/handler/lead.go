// internal/handler/lead.go
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

type LeadHandler struct {
	leadService *service.LeadService
}

func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

type LeadResponse struct {
	BaseResponse
	Lead *model.Lead `json:"lead"`
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var input service.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	lead, err := h.leadService.Create(r.Context(), p, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, LeadResponse{BaseResponse{Ok: true}, lead})
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	lead, err := h.leadService.GetByID(r.Context(), p, id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, LeadResponse{BaseResponse{Ok: true}, lead})
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var filter repository.LeadFilter
	if raw := r.URL.Query().Get("agent_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid agent id")
			return
		}
		filter.AgentID = &id
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := model.LeadStatus(raw)
		filter.Status = &status
	}

	leads, err := h.leadService.List(r.Context(), p, filter)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		Leads []*model.Lead `json:"leads"`
	}{BaseResponse{Ok: true}, leads})
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var input service.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	lead, err := h.leadService.Update(r.Context(), p, id, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, LeadResponse{BaseResponse{Ok: true}, lead})
}
