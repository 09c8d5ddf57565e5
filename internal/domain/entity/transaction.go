package entity

import "time"

// Direcciones de una transacción de stock.
const (
	DirectionIN  = "IN"  // entrada: suma stock
	DirectionOUT = "OUT" // salida: resta stock
)

// Transaction es una fila inmutable del libro de transacciones: un cambio de
// cantidad con sus snapshots de stock antes y después. Nunca se actualiza ni
// se borra; StockAfter - StockBefore == ±Quantity según la dirección.
type Transaction struct {
	ID          string
	ItemID      string
	ItemName    string // snapshot
	Direction   string // IN | OUT
	Quantity    int64  // siempre positiva; la dirección da el signo
	Reason      string
	UserID      string
	UserName    string
	UserRole    string
	Timestamp   time.Time
	StockBefore int64
	StockAfter  int64
}
