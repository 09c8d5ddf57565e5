package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// AppointmentRepository define el puerto de persistencia para Appointment.
// Los renglones (Items) se serializan como secuencia estructurada (JSONB),
// preservando orden y todos los campos.
type AppointmentRepository interface {
	Create(apt *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	// GetForUpdate bloquea la fila de la cita (SELECT FOR UPDATE); exclusión
	// mutua entre completar/cancelar concurrentes sobre el mismo ID.
	GetForUpdate(id string) (*entity.Appointment, error)
	List(limit, offset int) ([]*entity.Appointment, error)
	Update(apt *entity.Appointment) error
	UpdateStatus(apt *entity.Appointment) error
}
