package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"retail-store/internal/dto/request"
	"retail-store/internal/usecase"
	"retail-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /api/orders. Guest checkout is allowed, so the
// customer reference comes from the session when one is present.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	// A signed-in customer always orders as themselves
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		req.CustomerID = &userID
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", order)
}

// GetOrderByID handles GET /api/orders/{id}
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseUUID(w, chi.URLParam(r, "id"), "Order ID")
	if !ok {
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get order by ID")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", order)
}

// GetMyOrders handles GET /api/orders for the signed-in customer
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.GetOrdersByCustomer(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// GetCustomerOrders handles GET /api/admin/customers/{id}/orders (admin only)
func (h *OrderHandler) GetCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.parseUUID(w, chi.URLParam(r, "id"), "Customer ID")
	if !ok {
		return
	}

	orders, err := h.service.GetOrdersByCustomer(r.Context(), customerID)
	if err != nil {
		h.handleServiceError(w, err, "get customer orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// CompleteOrder handles PUT /api/admin/orders/{id}/complete (admin only)
func (h *OrderHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseUUID(w, chi.URLParam(r, "id"), "Order ID")
	if !ok {
		return
	}

	order, err := h.service.CompleteOrder(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "complete order")
		return
	}

	utils.ResponseSuccess(w, "Order completed successfully", order)
}

func (h *OrderHandler) parseUUID(w http.ResponseWriter, raw, label string) (uuid.UUID, bool) {
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

func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already completed"):
		h.log.Warn(operation+" failed - already completed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

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
