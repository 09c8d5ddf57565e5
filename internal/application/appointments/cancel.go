package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// Cancel transiciona la cita a cancelled. No toca cantidades ni el libro de
// transacciones; el único efecto es el cambio de estado. El bloqueo de fila
// protege el guard contra carreras igual que en Complete.
func (uc *UseCase) Cancel(ctx context.Context, id string, actor entity.Actor) error {
	var apt *entity.Appointment
	now := time.Now()

	err := uc.txRunner.RunAppointment(ctx, func(
		aptRepo repository.AppointmentRepository,
		_ repository.ItemRepository,
		_ repository.TransactionRepository,
	) error {
		var err error
		apt, err = aptRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if apt == nil {
			return domain.ErrNotFound
		}
		if !apt.Status.CanTransitionTo(entity.StatusCancelled) {
			return domain.ErrInvalidState
		}
		apt.Status = entity.StatusCancelled
		apt.LastUpdated = now
		return aptRepo.UpdateStatus(apt)
	})
	if err != nil {
		return err
	}

	for _, li := range apt.Items {
		uc.logActivity(li.ItemName, entity.ActionAppointmentCancelled, actor,
			fmt.Sprintf("Cancelled restock appointment with %s scheduled for %s", apt.SupplierName, apt.Date))
	}
	return nil
}
