package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// CompleteResult resumen de una cita completada.
type CompleteResult struct {
	ItemsRestocked int
	TotalUnits     int64
}

// Complete transiciona la cita a completed y aplica sus efectos como una sola
// unidad atómica: por cada renglón, en orden, bloquea la fila del artículo
// (SELECT FOR UPDATE), suma las unidades pedidas y escribe una fila IN en el
// libro con los snapshots de stock antes/después; al final cambia el estado y
// hace commit. Cualquier error (artículo borrado, fallo de escritura,
// cancelación del ctx) revierte todo: cantidades, libro y estado.
//
// El bloqueo de la fila de la cita garantiza que dos llamadas concurrentes
// sobre el mismo ID produzcan exactamente un éxito: la segunda espera el lock,
// relee el estado ya terminal y recibe ErrInvalidState sin tocar inventario.
func (uc *UseCase) Complete(ctx context.Context, id string, actor entity.Actor) (*CompleteResult, error) {
	var apt *entity.Appointment
	now := time.Now()

	err := uc.txRunner.RunAppointment(ctx, func(
		aptRepo repository.AppointmentRepository,
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
	) error {
		var err error
		apt, err = aptRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if apt == nil {
			return domain.ErrNotFound
		}
		if !apt.Status.CanTransitionTo(entity.StatusCompleted) {
			return domain.ErrInvalidState
		}

		for _, li := range apt.Items {
			item, err := itemRepo.GetForUpdate(li.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				// Artículo borrado después de agendar: aborta la unidad completa.
				return domain.ErrNotFound
			}
			before := item.Quantity
			after := before + li.Quantity
			if err := itemRepo.UpdateQuantity(item.ID, after); err != nil {
				return err
			}
			txn := &entity.Transaction{
				ID:          uuid.New().String(),
				ItemID:      item.ID,
				ItemName:    li.ItemName,
				Direction:   entity.DirectionIN,
				Quantity:    li.Quantity,
				Reason:      fmt.Sprintf("Restock from appointment with %s", apt.SupplierName),
				UserID:      actor.ID,
				UserName:    actor.Name,
				UserRole:    actor.Role,
				Timestamp:   now,
				StockBefore: before,
				StockAfter:  after,
			}
			if err := txnRepo.Create(txn); err != nil {
				return err
			}
		}

		apt.Status = entity.StatusCompleted
		apt.LastUpdated = now
		return aptRepo.UpdateStatus(apt)
	})
	if err != nil {
		return nil, err
	}

	// Bitácora después del commit: informativa, nunca revierte el inventario.
	for _, li := range apt.Items {
		uc.logActivity(li.ItemName, entity.ActionAppointmentCompleted, actor,
			fmt.Sprintf("Completed restock appointment with %s - Received %d units", apt.SupplierName, li.Quantity))
	}

	return &CompleteResult{
		ItemsRestocked: len(apt.Items),
		TotalUnits:     apt.TotalUnits(),
	}, nil
}
