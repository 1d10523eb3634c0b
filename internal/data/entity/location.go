package entity

type Location struct {
	Base
	Name string `db:"name"`
}
