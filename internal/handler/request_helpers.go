package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CreateSoloHuntRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Record solo hunt"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// The "all" selection sentinels count as missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := domain.NormalizeFilter(r.URL.Query().Get(paramName))
	if value == "" {
		return defaultValue
	}
	return value
}

// getDateQueryParam parses an optional YYYY-MM-DD filter. A malformed value
// writes a 400 and returns ok=false.
func getDateQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (domain.Date, bool) {
	raw := GetOptionalQueryParam(r, paramName, "")
	if raw == "" {
		return domain.Date{}, true
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDateFilter)
		return domain.Date{}, false
	}
	return d, true
}

// getIDParam parses the {id} path segment. A malformed id writes a 400 and
// returns ok=false.
func getIDParam(r *http.Request, w http.ResponseWriter) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}
