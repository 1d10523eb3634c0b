package request

import "github.com/google/uuid"

type RegisterRequest struct {
	Username          string     `json:"username" validate:"required,alphanum,min=5,max=20"`
	Password          string     `json:"password" validate:"required,min=8,max=40"`
	FirstName         string     `json:"first_name" validate:"required,alpha,min=1,max=20"`
	LastName          string     `json:"last_name" validate:"required,alpha,min=1,max=20"`
	DefaultLocationID *uuid.UUID `json:"default_location_id,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
