package entity

import (
	"github.com/google/uuid"
)

type AccessLevel string

const (
	AccessLevelView AccessLevel = "view"
	AccessLevelEdit AccessLevel = "edit"
)

// User is the credential-bearing view shared by both account variants.
// Administrators and customers live in separate collections but form a
// single login namespace: sign-in and username-uniqueness checks search both.
type User interface {
	GetID() uuid.UUID
	GetUsername() string
	GetPassword() string
}

type Administrator struct {
	Base
	Username    string      `db:"username"`
	Password    string      `db:"password"`
	FirstName   string      `db:"first_name"`
	LastName    string      `db:"last_name"`
	AccessLevel AccessLevel `db:"access_level"`
}

func (a *Administrator) GetID() uuid.UUID    { return a.ID }
func (a *Administrator) GetUsername() string { return a.Username }
func (a *Administrator) GetPassword() string { return a.Password }

type Customer struct {
	Base
	Username  string `db:"username"`
	Password  string `db:"password"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	// DefaultLocation may be unset at creation; display paths fall back to
	// the store's default location.
	DefaultLocation *Location
}

func (c *Customer) GetID() uuid.UUID    { return c.ID }
func (c *Customer) GetUsername() string { return c.Username }
func (c *Customer) GetPassword() string { return c.Password }
