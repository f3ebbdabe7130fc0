// internal/handler/user.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UserResponse struct {
	BaseResponse
	User *model.User `json:"user"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var input service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.Create(r.Context(), p, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, UserResponse{BaseResponse{Ok: true}, user})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	users, err := h.userService.List(r.Context(), p)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		Users []*model.User `json:"users"`
	}{BaseResponse{Ok: true}, users})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.GetByID(r.Context(), p, id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, UserResponse{BaseResponse{Ok: true}, user})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.Update(r.Context(), p, id, input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, UserResponse{BaseResponse{Ok: true}, user})
}
