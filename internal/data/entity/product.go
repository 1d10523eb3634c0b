package entity

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	Base
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Description string          `db:"description"`
}
