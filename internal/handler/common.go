// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/middleware"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type BaseResponse struct {
	Ok bool `json:"ok"`
}

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondDomainError maps the error taxonomy onto transport status codes:
// not-found 404, conflict and duplicate 409, forbidden 403, invalid input
// 400, anything else 500 with the detail kept out of the response.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"error", err,
			"requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// principal pulls the verified principal from the context; routes behind
// the auth middleware always have one.
func principal(w http.ResponseWriter, r *http.Request) (authz.Principal, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no authenticated principal")
	}
	return p, ok
}
