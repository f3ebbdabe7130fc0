// internal/handler/team.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TeamHandler exposes the assignment ledger. Every mutation requires a
// management role; team leaders and agents read their own membership
// through the viewing/lead surfaces instead.
type TeamHandler struct {
	assignmentService *service.AssignmentService
}

func NewTeamHandler(assignmentService *service.AssignmentService) *TeamHandler {
	return &TeamHandler{assignmentService: assignmentService}
}

type AssignmentResponse struct {
	BaseResponse
	Assignment *model.TeamAssignment `json:"assignment"`
}

func (h *TeamHandler) requireManagement(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	p, ok := principal(w, r)
	if !ok {
		return uuid.Nil, false
	}
	if !p.Role.Management() {
		respondWithError(w, http.StatusForbidden, "team assignment requires a management role")
		return uuid.Nil, false
	}
	return p.ID, true
}

func (h *TeamHandler) Assign(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.requireManagement(w, r)
	if !ok {
		return
	}

	var input service.AssignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	assignment, err := h.assignmentService.Assign(r.Context(), input, actorID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, AssignmentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Assignment:   assignment,
	})
}

func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireManagement(w, r); !ok {
		return
	}

	var input service.RemoveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	assignment, err := h.assignmentService.Remove(r.Context(), input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, AssignmentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Assignment:   assignment,
	})
}

func (h *TeamHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.requireManagement(w, r)
	if !ok {
		return
	}

	var input service.TransferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	assignment, err := h.assignmentService.Transfer(r.Context(), input, actorID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, AssignmentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Assignment:   assignment,
	})
}

func (h *TeamHandler) TeamLeaderOf(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireManagement(w, r); !ok {
		return
	}
	agentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	leader, err := h.assignmentService.CurrentTeamLeader(r.Context(), agentID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		TeamLeader *model.User `json:"team_leader"`
	}{BaseResponse{Ok: true}, leader})
}

func (h *TeamHandler) TeamMembers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireManagement(w, r); !ok {
		return
	}
	leaderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid team leader id")
		return
	}

	members, err := h.assignmentService.TeamMembers(r.Context(), leaderID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		Members []uuid.UUID `json:"members"`
	}{BaseResponse{Ok: true}, members})
}

func (h *TeamHandler) History(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireManagement(w, r); !ok {
		return
	}
	agentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	history, err := h.assignmentService.History(r.Context(), agentID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		History []model.TeamAssignment `json:"history"`
	}{BaseResponse{Ok: true}, history})
}
