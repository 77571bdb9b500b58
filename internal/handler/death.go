package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/AlbionStats_Go/internal/death"
	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// DeathHandler serves the death record endpoints
type DeathHandler struct {
	service death.Service
}

// NewDeathHandler creates a new DeathHandler
func NewDeathHandler(service death.Service) *DeathHandler {
	return &DeathHandler{service: service}
}

// CreateDeathRequest is the body of POST /deaths
type CreateDeathRequest struct {
	Date        string          `json:"date" validate:"required,isodate"`
	Character   string          `json:"character" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ValueLost   decimal.Decimal `json:"value_lost" validate:"silver"`
	Description string          `json:"description" validate:"max=1000"`
}

// HandleCreateDeath records a death
// @Summary Record death
// @Tags deaths
// @Accept json
// @Produce json
// @Param request body CreateDeathRequest true "Death"
// @Success 201 {object} domain.Death
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /deaths [post]
func (h *DeathHandler) HandleCreateDeath(w http.ResponseWriter, r *http.Request) {
	var req CreateDeathRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record death"); err != nil {
		return
	}

	date, _ := domain.ParseDate(req.Date)
	record := &domain.Death{
		Date:        date,
		Character:   req.Character,
		ValueLost:   req.ValueLost,
		Description: req.Description,
	}
	if err := h.service.RecordDeath(r.Context(), record); err != nil {
		respondServiceError(w, r, ErrMsgRecordDeathFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// HandleListDeaths lists deaths, newest first
// @Summary List deaths
// @Tags deaths
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param character query string false "Character name"
// @Success 200 {array} domain.Death
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /deaths [get]
func (h *DeathHandler) HandleListDeaths(w http.ResponseWriter, r *http.Request) {
	date, ok := getDateQueryParam(r, w, "date")
	if !ok {
		return
	}
	filter := domain.DeathFilter{
		Date:      date,
		Character: GetOptionalQueryParam(r, "character", ""),
	}

	deaths, err := h.service.ListDeaths(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, ErrMsgListDeathsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, deaths)
}

// HandleDeleteDeath deletes a death. Unknown ids succeed.
// @Summary Delete death
// @Tags deaths
// @Produce json
// @Param id path int true "Death id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /deaths/{id} [delete]
func (h *DeathHandler) HandleDeleteDeath(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r, w)
	if !ok {
		return
	}

	if err := h.service.DeleteDeath(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgDeleteDeathFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecordDeleted})
}
