package request

import "github.com/google/uuid"

type OrderLineRequest struct {
	InventoryID uuid.UUID `json:"inventory_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,gte=1"`
}

type OrderRequest struct {
	// CustomerID is nil for guest orders.
	CustomerID *uuid.UUID         `json:"customer_id,omitempty"`
	Lines      []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}
