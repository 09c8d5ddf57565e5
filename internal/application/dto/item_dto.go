package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/inventory.
type CreateItemRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int64           `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
}

// UpdateItemRequest body para PUT /api/inventory/:id. Campos nil no se tocan.
// Quantity aquí es la edición directa de admin; no pasa por el coordinador.
type UpdateItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Quantity     *int64           `json:"quantity,omitempty"`
	ReorderLevel *int64           `json:"reorder_level,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Location     *string          `json:"location,omitempty"`
	SupplierID   *string          `json:"supplier_id,omitempty"`
	SupplierName *string          `json:"supplier_name,omitempty"`
}

// ItemResponse representación HTTP de un artículo.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int64           `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
