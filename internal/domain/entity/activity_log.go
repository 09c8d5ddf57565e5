package entity

import "time"

// Acciones registradas en la bitácora de actividad.
const (
	ActionAppointmentScheduled = "Appointment Scheduled"
	ActionAppointmentUpdated   = "Appointment Updated"
	ActionAppointmentCompleted = "Appointment Completed"
	ActionAppointmentCancelled = "Appointment Cancelled"
	ActionItemAdded            = "Added"
	ActionItemEdited           = "Edited"
	ActionItemDeleted          = "Deleted"
	ActionTransaction          = "Transaction"
)

// ActivityLogEntry es una entrada de la bitácora (append-only, informativa).
// No porta invariantes: un fallo al escribirla no revierte la operación de negocio.
type ActivityLogEntry struct {
	ID        string
	ItemName  string
	Action    string
	UserID    string
	UserName  string
	UserRole  string
	Details   string
	Timestamp time.Time
}
