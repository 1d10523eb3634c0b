package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"retail-store/internal/dto/viewmodel"
	"retail-store/internal/usecase"
	"retail-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	service usecase.InventoryService
	log     *zap.Logger
}

func NewInventoryHandler(service usecase.InventoryService, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inventory")),
	}
}

// GetInventoryByID handles GET /api/inventories/{id}
func (h *InventoryHandler) GetInventoryByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseUUID(w, chi.URLParam(r, "id"), "Inventory ID")
	if !ok {
		return
	}

	inventory, err := h.service.GetInventoryByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get inventory by ID")
		return
	}

	utils.ResponseSuccess(w, "Inventory retrieved successfully", inventory)
}

// GetInventoriesByLocation handles GET /api/locations/{id}/inventories
func (h *InventoryHandler) GetInventoriesByLocation(w http.ResponseWriter, r *http.Request) {
	locationID, ok := h.parseUUID(w, chi.URLParam(r, "id"), "Location ID")
	if !ok {
		return
	}

	inventories, err := h.service.GetInventoriesByLocation(r.Context(), locationID)
	if err != nil {
		h.handleServiceError(w, err, "get inventories by location")
		return
	}

	utils.ResponseSuccess(w, "Inventories retrieved successfully", inventories)
}

// CreateInventory handles POST /api/admin/inventories (admin only)
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var view viewmodel.Inventory

	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	inventory, err := h.service.CreateInventory(r.Context(), &view)
	if err != nil {
		h.handleServiceError(w, err, "create inventory")
		return
	}

	utils.ResponseCreated(w, "Inventory created successfully", inventory)
}

// AdjustQuantity handles PUT /api/admin/inventories/{id}/quantity (admin only)
func (h *InventoryHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseUUID(w, chi.URLParam(r, "id"), "Inventory ID")
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity" validate:"gte=0"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	inventory, err := h.service.AdjustQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		h.handleServiceError(w, err, "adjust inventory quantity")
		return
	}

	utils.ResponseSuccess(w, "Inventory quantity updated successfully", inventory)
}

func (h *InventoryHandler) parseUUID(w http.ResponseWriter, raw, label string) (uuid.UUID, bool) {
	if raw == "" {
		utils.ResponseBadRequest(w, label+" is required", nil)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+label, nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *InventoryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
