// internal/handler/viewing.go
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

type ViewingHandler struct {
	viewingService *service.ViewingService
}

func NewViewingHandler(viewingService *service.ViewingService) *ViewingHandler {
	return &ViewingHandler{viewingService: viewingService}
}

type ViewingResponse struct {
	BaseResponse
	Viewing *model.Viewing `json:"viewing"`
}

type ViewingListResponse struct {
	BaseResponse
	Viewings []*model.Viewing `json:"viewings"`
}

func (h *ViewingHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var input service.CreateViewingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	viewing, err := h.viewingService.CreateRoot(r.Context(), p, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, ViewingResponse{BaseResponse{Ok: true}, viewing})
}

func (h *ViewingHandler) CreateFollowUp(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	parentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid viewing id")
		return
	}

	var input service.FollowUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	viewing, err := h.viewingService.CreateFollowUp(r.Context(), p, parentID, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, ViewingResponse{BaseResponse{Ok: true}, viewing})
}

func (h *ViewingHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid viewing id")
		return
	}

	viewing, err := h.viewingService.GetByID(r.Context(), p, id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ViewingResponse{BaseResponse{Ok: true}, viewing})
}

func (h *ViewingHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	filter, err := viewingFilterFromQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	viewings, err := h.viewingService.ListRoots(r.Context(), p, filter)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ViewingListResponse{BaseResponse{Ok: true}, viewings})
}

func (h *ViewingHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid viewing id")
		return
	}

	var input service.UpdateViewingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	viewing, err := h.viewingService.Update(r.Context(), p, id, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ViewingResponse{BaseResponse{Ok: true}, viewing})
}

func (h *ViewingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid viewing id")
		return
	}

	if err := h.viewingService.Delete(r.Context(), p, id); err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func viewingFilterFromQuery(r *http.Request) (repository.ViewingFilter, error) {
	var filter repository.ViewingFilter
	q := r.URL.Query()

	for param, target := range map[string]**uuid.UUID{
		"property_id": &filter.PropertyID,
		"lead_id":     &filter.LeadID,
		"agent_id":    &filter.AgentID,
	} {
		if raw := q.Get(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return filter, err
			}
			*target = &id
		}
	}
	if raw := q.Get("status"); raw != "" {
		status := model.ViewingStatus(raw)
		filter.Status = &status
	}
	if raw := q.Get("is_serious"); raw != "" {
		serious := raw == "true"
		filter.IsSerious = &serious
	}
	return filter, nil
}
