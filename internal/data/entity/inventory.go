package entity

// Inventory tracks the stock of one product at one location. Both references
// are set at creation and never re-pointed.
type Inventory struct {
	Base
	Quantity int `db:"quantity"`
	Product  *Product
	Location *Location
}
