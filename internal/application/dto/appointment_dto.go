package dto

import "time"

// LineItemDTO renglón de una cita: artículo y unidades pedidas.
type LineItemDTO struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
}

// ScheduleAppointmentRequest body para POST /api/appointments.
type ScheduleAppointmentRequest struct {
	SupplierID   string        `json:"supplier_id"`
	SupplierName string        `json:"supplier_name"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Items        []LineItemDTO `json:"items"`
	Notes        string        `json:"notes,omitempty"`
}

// UpdateAppointmentRequest body para PUT /api/appointments/:id.
// Campos nil no se modifican. Solo válido mientras la cita no es terminal.
type UpdateAppointmentRequest struct {
	SupplierID   *string       `json:"supplier_id,omitempty"`
	SupplierName *string       `json:"supplier_name,omitempty"`
	Date         *string       `json:"date,omitempty"`
	Time         *string       `json:"time,omitempty"`
	Status       *string       `json:"status,omitempty"`
	Items        []LineItemDTO `json:"items,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
}

// AppointmentResponse representación HTTP de una cita.
type AppointmentResponse struct {
	ID           string        `json:"id"`
	SupplierID   string        `json:"supplier_id"`
	SupplierName string        `json:"supplier_name"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Status       string        `json:"status"`
	Items        []LineItemDTO `json:"items"`
	Notes        string        `json:"notes"`
	ScheduledBy  string        `json:"scheduled_by"`
	CreatedAt    time.Time     `json:"created_at"`
	LastUpdated  time.Time     `json:"last_updated"`
}

// AppointmentListResponse listado de citas ordenado por (date, time).
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// CompleteAppointmentResponse resumen al completar una cita.
type CompleteAppointmentResponse struct {
	Message        string `json:"message"`
	ItemsRestocked int    `json:"itemsRestocked"`
	TotalUnits     int64  `json:"totalUnits"`
}
