package viewmodel

import (
	"github.com/google/uuid"
)

type Location struct {
	LocationID uuid.UUID `json:"location_id"`
	Name       string    `json:"name" validate:"required,max=100"`
}
