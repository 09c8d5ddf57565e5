package appointments

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// AppointmentTxRunner ejecuta una función dentro de una transacción de BD,
// pasando repositorios atados a esa tx. Garantiza la atomicidad de la
// operación completa: o se aplican el cambio de estado, todos los ajustes de
// cantidad y todas las filas del libro, o ninguno.
type AppointmentTxRunner interface {
	RunAppointment(ctx context.Context, fn func(
		aptRepo repository.AppointmentRepository,
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
	) error) error
}
