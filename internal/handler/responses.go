package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/equipment"
	"github.com/osse101/AlbionStats_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// UnknownEquipmentResponse lists the slots that rejected a build write
type UnknownEquipmentResponse struct {
	Error      string                   `json:"error"`
	Mismatches []equipment.SlotMismatch `json:"mismatches"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgRecordNotFoundError = "Record not found"
	ErrMsgUnknownEquipmentErr = "Build names equipment the catalog does not have"
	ErrMsgCatalogMissingError = "Equipment catalog is unavailable"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, invalidInputMessage(err)
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, ErrMsgRecordNotFoundError
	case errors.Is(err, domain.ErrUnknownEquipment):
		return http.StatusUnprocessableEntity, ErrMsgUnknownEquipmentErr
	case errors.Is(err, domain.ErrResourceMissing):
		return http.StatusServiceUnavailable, ErrMsgCatalogMissingError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// invalidInputMessage surfaces the presence-check detail, which never carries
// internal state
func invalidInputMessage(err error) string {
	msg := err.Error()
	if len(msg) > 200 {
		return domain.ErrMsgInvalidInput
	}
	return msg
}

// respondServiceError logs err and writes the mapped status. Catalog
// rejections also carry the offending slots.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}

	var unknown *equipment.UnknownEquipmentError
	if errors.As(err, &unknown) {
		respondJSON(w, status, UnknownEquipmentResponse{Error: msg, Mismatches: unknown.Mismatches})
		return
	}
	respondError(w, status, msg)
}
