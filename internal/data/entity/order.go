package entity

import (
	"time"
)

type Order struct {
	Base
	OrderDate time.Time `db:"order_date"`
	Completed bool      `db:"completed"`
	// Customer is nil for guest orders.
	Customer *Customer
}

type OrderLine struct {
	BaseSimple
	Quantity  int `db:"quantity"`
	Order     *Order
	Inventory *Inventory
}
