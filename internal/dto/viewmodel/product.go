package viewmodel

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Name        string          `json:"name" validate:"required,max=100"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description" validate:"max=500"`
}
