package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// maxBodyBytes ограничивает размер тела запроса.
const maxBodyBytes = 1 << 20

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// writeDomainError выбирает статус-код по ошибке use case'а. Только этот слой знает про HTTP.
func writeDomainError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: validationErr.Errors})
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, notFoundMessage(err))
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrInvalidReference):
		logger.Warn("Constraint violation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusConflict, constraintMessage(err))
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, constraintMessage(err))
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("Request timed out", err, nil)
		WriteJSONError(w, http.StatusServiceUnavailable, "Request timed out")
	default:
		logger.Error("Unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// notFoundMessage превращает "listing not found" в "Listing not found".
func notFoundMessage(err error) string {
	msg := err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func constraintMessage(err error) string {
	var constraintErr *domain.ConstraintError
	if errors.As(err, &constraintErr) {
		return constraintErr.Error()
	}
	return err.Error()
}

// parseIDParam читает положительный целочисленный id из URL.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// idParam разбирает id из URL и сам отвечает 400, если он некорректен.
func idParam(w http.ResponseWriter, r *http.Request, logger port.LoggerPort, name string) (int64, bool) {
	id, err := parseIDParam(r, name)
	if err != nil {
		logger.Warn("Invalid path parameter", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// decodeJSON читает тело запроса в dst и проверяет его валидатором.
func decodeJSON(w http.ResponseWriter, r *http.Request, v *Validator, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return v.Validate(dst)
}

// writeDecodeError отвечает 400 на некорректное тело или ошибки валидации.
func writeDecodeError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn("Request validation failed", port.Fields{"fields": validationErr.Errors})
		RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: validationErr.Errors})
		return
	}
	logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
	WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
}
