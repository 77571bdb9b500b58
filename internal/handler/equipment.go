package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/equipment"
)

// EquipmentHandler serves catalog lookups
type EquipmentHandler struct {
	catalog equipment.Catalog
}

// NewEquipmentHandler creates a new EquipmentHandler
func NewEquipmentHandler(catalog equipment.Catalog) *EquipmentHandler {
	return &EquipmentHandler{catalog: catalog}
}

// ResolveResponse is the result of a display-name lookup
type ResolveResponse struct {
	Name       string `json:"name"`
	ExternalID string `json:"external_id,omitempty"`
	Found      bool   `json:"found"`
}

// HandleListCategories lists the catalog categories
// @Summary List equipment categories
// @Tags equipment
// @Produce json
// @Success 200 {array} string
// @Router /equipment [get]
func (h *EquipmentHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

// HandleListEquipment lists one category sorted by name. An unreadable
// catalog yields an empty list.
// @Summary List equipment
// @Tags equipment
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} domain.EquipmentEntry
// @Failure 404 {object} ErrorResponse
// @Router /equipment/{category} [get]
func (h *EquipmentHandler) HandleListEquipment(w http.ResponseWriter, r *http.Request) {
	category := domain.EquipmentCategory(chi.URLParam(r, "category"))
	if !category.IsValid() {
		respondError(w, http.StatusNotFound, ErrMsgUnknownCategory)
		return
	}

	respondJSON(w, http.StatusOK, h.catalog.ListEquipment(r.Context(), category))
}

// HandleResolve maps a display name to its catalog id. A miss is not an error.
// @Summary Resolve item id
// @Tags equipment
// @Produce json
// @Param name query string true "Display name"
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} ErrorResponse
// @Router /equipment/resolve [get]
func (h *EquipmentHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	name, ok := GetQueryParam(r, w, "name")
	if !ok {
		return
	}

	id, found := h.catalog.ResolveItemID(r.Context(), name)
	respondJSON(w, http.StatusOK, ResolveResponse{Name: name, ExternalID: id, Found: found})
}
