package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wthriver/fiscalflow/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidUsefulLife),
		errors.Is(err, domain.ErrInvalidDepreciationMethod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
