package viewmodel

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Inventory struct {
	InventoryID uuid.UUID `json:"inventory_id"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	// foreign keys
	ProductID  uuid.UUID `json:"product_id"`
	LocationID uuid.UUID `json:"location_id"`
	// denormalized product fields
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	// denormalized location fields
	LocationName string `json:"location_name"`
}
