package adaptor

import (
	"retail-store/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Product   *ProductHandler
	Location  *LocationHandler
	Inventory *InventoryHandler
	Order     *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Product:   NewProductHandler(service.Product, log),
		Location:  NewLocationHandler(service.Location, log),
		Inventory: NewInventoryHandler(service.Inventory, log),
		Order:     NewOrderHandler(service.Order, log),
	}
}
