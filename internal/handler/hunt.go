package handler

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/hunt"
)

// HuntHandler serves the solo and group hunt endpoints
type HuntHandler struct {
	service hunt.Service
}

// NewHuntHandler creates a new HuntHandler
func NewHuntHandler(service hunt.Service) *HuntHandler {
	return &HuntHandler{service: service}
}

// CreateSoloHuntRequest is the body of POST /solo-hunts
type CreateSoloHuntRequest struct {
	Date        string          `json:"date" validate:"required,isodate"`
	Character   string          `json:"character" validate:"required,max=100,excludesall=\x00\n\r\t"`
	HuntType    string          `json:"hunt_type" validate:"required,hunt_type"`
	ItemProfit  decimal.Decimal `json:"item_profit" validate:"silver"`
	Description string          `json:"description" validate:"max=1000"`
}

// CreateGroupHuntRequest is the body of POST /group-hunts
type CreateGroupHuntRequest struct {
	Date       string          `json:"date" validate:"required,isodate"`
	Characters []string        `json:"characters" validate:"required,min=1,dive,required,max=100,excludesall=0x2C\x00\n\r\t"`
	TotalValue decimal.Decimal `json:"total_value" validate:"silver"`
	Notes      string          `json:"notes" validate:"max=1000"`
}

// HandleCreateSoloHunt records a solo hunt
// @Summary Record solo hunt
// @Tags hunts
// @Accept json
// @Produce json
// @Param request body CreateSoloHuntRequest true "Solo hunt"
// @Success 201 {object} domain.SoloHunt
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /solo-hunts [post]
func (h *HuntHandler) HandleCreateSoloHunt(w http.ResponseWriter, r *http.Request) {
	var req CreateSoloHuntRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record solo hunt"); err != nil {
		return
	}

	date, _ := domain.ParseDate(req.Date)
	record := &domain.SoloHunt{
		Date:        date,
		Character:   req.Character,
		HuntType:    domain.HuntType(req.HuntType),
		ItemProfit:  req.ItemProfit,
		Description: req.Description,
	}
	if err := h.service.RecordSoloHunt(r.Context(), record); err != nil {
		respondServiceError(w, r, ErrMsgRecordSoloHuntFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// HandleListSoloHunts lists solo hunts, newest first
// @Summary List solo hunts
// @Tags hunts
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param character query string false "Character name"
// @Param hunt_type query string false "Hunt type"
// @Success 200 {array} domain.SoloHunt
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /solo-hunts [get]
func (h *HuntHandler) HandleListSoloHunts(w http.ResponseWriter, r *http.Request) {
	date, ok := getDateQueryParam(r, w, "date")
	if !ok {
		return
	}
	filter := domain.SoloHuntFilter{
		Date:      date,
		Character: GetOptionalQueryParam(r, "character", ""),
		HuntType:  domain.HuntType(GetOptionalQueryParam(r, "hunt_type", "")),
	}

	hunts, err := h.service.ListSoloHunts(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, ErrMsgListSoloHuntsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, hunts)
}

// HandleDeleteSoloHunt deletes a solo hunt. Unknown ids succeed.
// @Summary Delete solo hunt
// @Tags hunts
// @Produce json
// @Param id path int true "Solo hunt id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /solo-hunts/{id} [delete]
func (h *HuntHandler) HandleDeleteSoloHunt(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r, w)
	if !ok {
		return
	}

	if err := h.service.DeleteSoloHunt(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgDeleteSoloHuntFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecordDeleted})
}

// HandleCreateGroupHunt records a group hunt
// @Summary Record group hunt
// @Tags hunts
// @Accept json
// @Produce json
// @Param request body CreateGroupHuntRequest true "Group hunt"
// @Success 201 {object} domain.GroupHunt
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /group-hunts [post]
func (h *HuntHandler) HandleCreateGroupHunt(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupHuntRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record group hunt"); err != nil {
		return
	}

	characters, err := domain.JoinCharacters(req.Characters)
	if err != nil {
		respondServiceError(w, r, ErrMsgRecordGroupHuntFailed, err)
		return
	}
	date, _ := domain.ParseDate(req.Date)
	record := &domain.GroupHunt{
		Date:       date,
		Characters: characters,
		TotalValue: req.TotalValue,
		Notes:      req.Notes,
	}
	if err := h.service.RecordGroupHunt(r.Context(), record); err != nil {
		respondServiceError(w, r, ErrMsgRecordGroupHuntFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// HandleListGroupHunts lists group hunts, newest first
// @Summary List group hunts
// @Tags hunts
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param character query string false "Participant name"
// @Param min_size query int false "Minimum participant count"
// @Success 200 {array} domain.GroupHunt
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /group-hunts [get]
func (h *HuntHandler) HandleListGroupHunts(w http.ResponseWriter, r *http.Request) {
	date, ok := getDateQueryParam(r, w, "date")
	if !ok {
		return
	}
	minSize := 0
	if raw := GetOptionalQueryParam(r, "min_size", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidMinSize)
			return
		}
		minSize = n
	}
	filter := domain.GroupHuntFilter{
		Date:         date,
		Character:    GetOptionalQueryParam(r, "character", ""),
		MinGroupSize: minSize,
	}

	hunts, err := h.service.ListGroupHunts(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, ErrMsgListGroupHuntsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, hunts)
}

// HandleDeleteGroupHunt deletes a group hunt. Unknown ids succeed.
// @Summary Delete group hunt
// @Tags hunts
// @Produce json
// @Param id path int true "Group hunt id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /group-hunts/{id} [delete]
func (h *HuntHandler) HandleDeleteGroupHunt(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r, w)
	if !ok {
		return
	}

	if err := h.service.DeleteGroupHunt(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgDeleteGroupHuntFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecordDeleted})
}
