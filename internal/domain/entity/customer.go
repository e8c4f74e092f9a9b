package entity

import "time"

// Customer representa un cliente mayorista.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Company   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
