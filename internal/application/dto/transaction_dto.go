package dto

import "time"

// RecordTransactionRequest body para POST /api/transactions (movimiento directo).
type RecordTransactionRequest struct {
	ItemID    string `json:"item_id"`
	Direction string `json:"direction"` // IN | OUT
	Quantity  int64  `json:"quantity"`  // > 0
	Reason    string `json:"reason"`
}

// TransactionResponse fila del libro de transacciones.
type TransactionResponse struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	ItemName    string    `json:"item_name"`
	Direction   string    `json:"direction"`
	Quantity    int64     `json:"quantity"`
	Reason      string    `json:"reason"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserRole    string    `json:"user_role"`
	Timestamp   time.Time `json:"timestamp"`
	StockBefore int64     `json:"stock_before"`
	StockAfter  int64     `json:"stock_after"`
}

// TransactionListResponse listado paginado del libro.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ActivityLogResponse entrada de la bitácora.
type ActivityLogResponse struct {
	ID        string    `json:"id"`
	ItemName  string    `json:"item_name"`
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserRole  string    `json:"user_role"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
