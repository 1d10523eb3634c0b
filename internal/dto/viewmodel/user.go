package viewmodel

import (
	"retail-store/internal/data/entity"

	"github.com/google/uuid"
)

// View models are the flat boundary representation of the domain: scalar
// fields and identifier tokens only, no live object graph. Cross-entity
// linkage is the referenced identifier plus denormalized display copies.

type Administrator struct {
	UserID      uuid.UUID          `json:"user_id"`
	Username    string             `json:"username" validate:"required,alphanum,min=5,max=20"`
	Password    string             `json:"password" validate:"required,min=8,max=40"`
	FirstName   string             `json:"first_name" validate:"required,alpha,min=1,max=20"`
	LastName    string             `json:"last_name" validate:"required,alpha,min=1,max=20"`
	AccessLevel entity.AccessLevel `json:"access_level" validate:"required,oneof=view edit"`
}

type Customer struct {
	UserID            uuid.UUID `json:"user_id"`
	Username          string    `json:"username" validate:"required,alphanum,min=5,max=20"`
	Password          string    `json:"password" validate:"required,min=8,max=40"`
	FirstName         string    `json:"first_name" validate:"required,alpha,min=1,max=20"`
	LastName          string    `json:"last_name" validate:"required,alpha,min=1,max=20"`
	DefaultLocationID uuid.UUID `json:"default_location_id"`
	DefaultStoreName  string    `json:"default_store_name"`
}
