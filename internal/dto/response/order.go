package response

import (
	"time"

	"retail-store/internal/dto/viewmodel"

	"github.com/google/uuid"
)

type OrderResponse struct {
	OrderID    uuid.UUID             `json:"order_id"`
	OrderDate  time.Time             `json:"order_date"`
	Completed  bool                  `json:"completed"`
	CustomerID *uuid.UUID            `json:"customer_id,omitempty"`
	Lines      []viewmodel.OrderLine `json:"lines"`
}
