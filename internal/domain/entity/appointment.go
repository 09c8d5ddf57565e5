package entity

import "time"

// Estados del ciclo de vida de una cita de reabastecimiento.
// pending y confirmed admiten transición; completed y cancelled son terminales.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid indica si el string corresponde a un estado conocido.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo valida la transición s -> target según la máquina de estados:
// pending -> confirmed | completed | cancelled; confirmed -> completed | cancelled.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if s.IsTerminal() || !target.Valid() {
		return false
	}
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCompleted || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	}
	return false
}

// LineItem es un renglón de la cita: artículo y unidades pedidas al proveedor.
// Se persiste como secuencia ordenada (JSONB), nunca se reparsea ad hoc.
type LineItem struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"` // snapshot al agendar
	Quantity int64  `json:"quantity"`  // > 0
}

// Appointment representa una cita de reabastecimiento con un proveedor.
// La lista de renglones es no vacía al crear; una vez terminal, el registro
// no admite cambios de estado ni de renglones.
type Appointment struct {
	ID           string
	SupplierID   string
	SupplierName string // snapshot denormalizado
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
	Status       AppointmentStatus
	Items        []LineItem
	Notes        string
	ScheduledBy  string
	CreatedAt    time.Time
	LastUpdated  time.Time
}

// TotalUnits suma las unidades de todos los renglones (aritmética entera exacta).
func (a *Appointment) TotalUnits() int64 {
	var total int64
	for _, li := range a.Items {
		total += li.Quantity
	}
	return total
}
