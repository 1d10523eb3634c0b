package viewmodel

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLine struct {
	OrderLineID uuid.UUID `json:"order_line_id"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	// foreign keys
	OrderID     uuid.UUID `json:"order_id"`
	InventoryID uuid.UUID `json:"inventory_id"`
	// denormalized display fields, present only while the inventory still
	// resolves
	Price       decimal.Decimal `json:"price"`
	ProductName string          `json:"product_name"`
	// TotalPrice is derived at read time from the product's current price,
	// never a stored snapshot.
	TotalPrice decimal.Decimal `json:"total_price"`
	StoreName  string          `json:"store_name"`
}
