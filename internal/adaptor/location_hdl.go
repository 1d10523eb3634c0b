package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"retail-store/internal/dto/viewmodel"
	"retail-store/internal/usecase"
	"retail-store/pkg/utils"

	"go.uber.org/zap"
)

type LocationHandler struct {
	service usecase.LocationService
	log     *zap.Logger
}

func NewLocationHandler(service usecase.LocationService, log *zap.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		log:     log.With(zap.String("handler", "location")),
	}
}

// GetLocations handles GET /api/locations
func (h *LocationHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.GetLocations(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get locations")
		return
	}

	utils.ResponseSuccess(w, "Locations retrieved successfully", locations)
}

// GetDefaultLocation handles GET /api/locations/default
func (h *LocationHandler) GetDefaultLocation(w http.ResponseWriter, r *http.Request) {
	location, err := h.service.GetDefaultLocation(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get default location")
		return
	}

	utils.ResponseSuccess(w, "Default location retrieved successfully", location)
}

// CreateLocation handles POST /api/admin/locations (admin only)
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var view viewmodel.Location

	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	location, err := h.service.CreateLocation(r.Context(), &view)
	if err != nil {
		h.handleServiceError(w, err, "create location")
		return
	}

	utils.ResponseCreated(w, "Location created successfully", location)
}

func (h *LocationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
