package entity

import "time"

// Supplier representa un proveedor de reabastecimiento.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	ContactEmail  string
	ContactPhone  string
	Address       string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
