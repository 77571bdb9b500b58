package handler

import (
	"net/http"

	"github.com/osse101/AlbionStats_Go/internal/build"
	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// BuildHandler serves the build endpoints
type BuildHandler struct {
	service build.Service
}

// NewBuildHandler creates a new BuildHandler
func NewBuildHandler(service build.Service) *BuildHandler {
	return &BuildHandler{service: service}
}

// BuildRequest is the body of POST /builds and PUT /builds/{id}. Slots hold
// catalog display names.
type BuildRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	ContentType   string `json:"content_type" validate:"required,content_type"`
	PrimaryWeapon string `json:"primary_weapon" validate:"required,max=100"`
	Offhand       string `json:"offhand" validate:"max=100"`
	Head          string `json:"head" validate:"max=100"`
	Chest         string `json:"chest" validate:"max=100"`
	Boots         string `json:"boots" validate:"max=100"`
	Cape          string `json:"cape" validate:"max=100"`
	Potion        string `json:"potion" validate:"max=100"`
	Food          string `json:"food" validate:"max=100"`
	Notes         string `json:"notes" validate:"max=2000"`
	Character     string `json:"character" validate:"max=100,excludesall=\x00\n\r\t"`
}

func (req BuildRequest) toBuild() *domain.Build {
	return &domain.Build{
		Name:          req.Name,
		ContentType:   domain.ContentType(req.ContentType),
		PrimaryWeapon: req.PrimaryWeapon,
		Offhand:       req.Offhand,
		Head:          req.Head,
		Chest:         req.Chest,
		Boots:         req.Boots,
		Cape:          req.Cape,
		Potion:        req.Potion,
		Food:          req.Food,
		Notes:         req.Notes,
		Character:     req.Character,
	}
}

// HandleCreateBuild stores a build after checking its slots against the catalog
// @Summary Create build
// @Tags builds
// @Accept json
// @Produce json
// @Param request body BuildRequest true "Build"
// @Success 201 {object} domain.Build
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} UnknownEquipmentResponse
// @Failure 500 {object} ErrorResponse
// @Router /builds [post]
func (h *BuildHandler) HandleCreateBuild(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create build"); err != nil {
		return
	}

	b := req.toBuild()
	if err := h.service.CreateBuild(r.Context(), b); err != nil {
		respondServiceError(w, r, ErrMsgCreateBuildFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, b)
}

// HandleListBuilds lists builds with their resolved slots
// @Summary List builds
// @Tags builds
// @Produce json
// @Param content_type query string false "Content type"
// @Param character query string false "Character name"
// @Success 200 {array} build.View
// @Failure 500 {object} ErrorResponse
// @Router /builds [get]
func (h *BuildHandler) HandleListBuilds(w http.ResponseWriter, r *http.Request) {
	filter := domain.BuildFilter{
		ContentType: domain.ContentType(GetOptionalQueryParam(r, "content_type", "")),
		Character:   GetOptionalQueryParam(r, "character", ""),
	}

	views, err := h.service.ListBuildViews(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, ErrMsgListBuildsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, views)
}

// HandleGetBuild returns one build
// @Summary Get build
// @Tags builds
// @Produce json
// @Param id path int true "Build id"
// @Success 200 {object} domain.Build
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /builds/{id} [get]
func (h *BuildHandler) HandleGetBuild(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r, w)
	if !ok {
		return
	}

	b, err := h.service.GetBuild(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetBuildFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, b)
}

// HandleUpdateBuild replaces a stored build
// @Summary Update build
// @Tags builds
// @Accept json
// @Produce json
// @Param id path int true "Build id"
// @Param request body BuildRequest true "Build"
// @Success 200 {object} domain.Build
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} UnknownEquipmentResponse
// @Failure 500 {object} ErrorResponse
// @Router /builds/{id} [put]
func (h *BuildHandler) HandleUpdateBuild(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r, w)
	if !ok {
		return
	}

	var req BuildRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update build"); err != nil {
		return
	}

	if err := h.service.UpdateBuild(r.Context(), id, req.toBuild()); err != nil {
		respondServiceError(w, r, ErrMsgUpdateBuildFailed, err)
		return
	}

	stored, err := h.service.GetBuild(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateBuildFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, stored)
}

// HandleDeleteBuild deletes a build. Unknown ids succeed.
// @Summary Delete build
// @Tags builds
// @Produce json
// @Param id path int true "Build id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /builds/{id} [delete]
func (h *BuildHandler) HandleDeleteBuild(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r, w)
	if !ok {
		return
	}

	if err := h.service.DeleteBuild(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgDeleteBuildFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBuildDeleted})
}
