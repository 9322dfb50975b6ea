// Package handler exposes the application over a JSON HTTP API. Handlers
// parse and authorize, services decide, and respondServiceError translates
// service sentinels into one consistent error contract.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/spendview/spendview/internal/repository"
	"github.com/spendview/spendview/internal/service"
	"github.com/spendview/spendview/internal/validation"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service/repository errors onto HTTP statuses:
// not-found 404, ownership 403, bad input 400, integrity conflicts 409,
// anything unrecognized a generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrVideoNotFound),
		errors.Is(err, repository.ErrCommentNotFound),
		errors.Is(err, repository.ErrReviewNotFound),
		errors.Is(err, repository.ErrExpenseNotFound),
		errors.Is(err, repository.ErrIncomeNotFound),
		errors.Is(err, repository.ErrFileNotFound):
		respondError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrNotCommentOwner),
		errors.Is(err, service.ErrNotExpenseOwner),
		errors.Is(err, service.ErrNotIncomeOwner):
		respondError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrNegativeBudget),
		errors.Is(err, service.ErrInvalidYear),
		errors.Is(err, service.ErrInvalidSortOrder),
		errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, validation.ErrInvalidRating),
		service.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrStorageNotConfigured):
		respondError(w, http.StatusConflict, err.Error())

	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
