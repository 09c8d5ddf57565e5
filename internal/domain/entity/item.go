package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo (SKU) del inventario del almacén.
// Quantity nunca es negativa; toda mutación por el motor de citas o por
// transacciones directas queda registrada en una fila de Transaction.
type Item struct {
	ID           string
	Name         string
	Category     string
	Quantity     int64
	ReorderLevel int64
	Price        decimal.Decimal // precio unitario
	Location     string
	SupplierID   string // vacío si no tiene proveedor asignado
	SupplierName string // snapshot denormalizado
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
