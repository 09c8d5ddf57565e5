package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// UseCase agrupa los casos de uso de citas de reabastecimiento: agendar,
// editar, listar y las transiciones de estado (completar/cancelar, el núcleo
// transaccional). La bitácora se escribe fuera de la transacción: es
// informativa y un fallo ahí no revierte el inventario.
type UseCase struct {
	txRunner AppointmentTxRunner
	aptRepo  repository.AppointmentRepository
	logRepo  repository.ActivityLogRepository
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner AppointmentTxRunner,
	aptRepo repository.AppointmentRepository,
	logRepo repository.ActivityLogRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{txRunner: txRunner, aptRepo: aptRepo, logRepo: logRepo, log: log}
}

// Schedule agenda una cita en estado pending. Requiere proveedor, fecha, hora
// y al menos un renglón con cantidad positiva.
func (uc *UseCase) Schedule(actor entity.Actor, in dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.SupplierID == "" || in.SupplierName == "" || in.Date == "" || in.Time == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, li := range in.Items {
		if li.ItemID == "" || li.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.LineItem{ItemID: li.ItemID, ItemName: li.ItemName, Quantity: li.Quantity})
	}
	now := time.Now()
	apt := &entity.Appointment{
		ID:           uuid.New().String(),
		SupplierID:   in.SupplierID,
		SupplierName: in.SupplierName,
		Date:         in.Date,
		Time:         in.Time,
		Status:       entity.StatusPending,
		Items:        items,
		Notes:        in.Notes,
		ScheduledBy:  actor.Name,
		CreatedAt:    now,
		LastUpdated:  now,
	}
	if err := uc.aptRepo.Create(apt); err != nil {
		return nil, err
	}
	for _, li := range apt.Items {
		uc.logActivity(li.ItemName, entity.ActionAppointmentScheduled, actor,
			fmt.Sprintf("Restock appointment with %s on %s at %s - Quantity: %d", apt.SupplierName, apt.Date, apt.Time, li.Quantity))
	}
	return toAppointmentResponse(apt), nil
}

// Update edita una cita mientras su estado sea pending o confirmed.
// Devuelve ErrNotFound si no existe y ErrInvalidState si ya es terminal.
// El estado completed solo se alcanza vía Complete y cancelled vía Cancel;
// por Update únicamente se permite pending <-> confirmed.
func (uc *UseCase) Update(ctx context.Context, id string, actor entity.Actor, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var updated *entity.Appointment
	err := uc.txRunner.RunAppointment(ctx, func(
		aptRepo repository.AppointmentRepository,
		_ repository.ItemRepository,
		_ repository.TransactionRepository,
	) error {
		apt, err := aptRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if apt == nil {
			return domain.ErrNotFound
		}
		if apt.Status.IsTerminal() {
			return domain.ErrInvalidState
		}
		if in.SupplierID != nil {
			apt.SupplierID = *in.SupplierID
		}
		if in.SupplierName != nil {
			apt.SupplierName = *in.SupplierName
		}
		if in.Date != nil {
			apt.Date = *in.Date
		}
		if in.Time != nil {
			apt.Time = *in.Time
		}
		if in.Status != nil {
			target := entity.AppointmentStatus(*in.Status)
			if target != apt.Status {
				if target.IsTerminal() || !apt.Status.CanTransitionTo(target) {
					return domain.ErrInvalidState
				}
				apt.Status = target
			}
		}
		if in.Items != nil {
			if len(in.Items) == 0 {
				return domain.ErrInvalidInput
			}
			items := make([]entity.LineItem, 0, len(in.Items))
			for _, li := range in.Items {
				if li.ItemID == "" || li.Quantity <= 0 {
					return domain.ErrInvalidInput
				}
				items = append(items, entity.LineItem{ItemID: li.ItemID, ItemName: li.ItemName, Quantity: li.Quantity})
			}
			apt.Items = items
		}
		if in.Notes != nil {
			apt.Notes = *in.Notes
		}
		apt.LastUpdated = time.Now()
		if err := aptRepo.Update(apt); err != nil {
			return err
		}
		updated = apt
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, li := range updated.Items {
		uc.logActivity(li.ItemName, entity.ActionAppointmentUpdated, actor,
			fmt.Sprintf("Updated restock appointment with %s on %s at %s", updated.SupplierName, updated.Date, updated.Time))
	}
	return toAppointmentResponse(updated), nil
}

// GetByID obtiene una cita por ID. Devuelve nil si no existe.
func (uc *UseCase) GetByID(id string) (*dto.AppointmentResponse, error) {
	apt, err := uc.aptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toAppointmentResponse(apt), nil
}

// List lista citas ordenadas por (fecha, hora) ascendente.
func (uc *UseCase) List(limit, offset int) (*dto.AppointmentListResponse, error) {
	list, err := uc.aptRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return &dto.AppointmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	items := make([]dto.LineItemDTO, 0, len(a.Items))
	for _, li := range a.Items {
		items = append(items, dto.LineItemDTO{ItemID: li.ItemID, ItemName: li.ItemName, Quantity: li.Quantity})
	}
	return &dto.AppointmentResponse{
		ID:           a.ID,
		SupplierID:   a.SupplierID,
		SupplierName: a.SupplierName,
		Date:         a.Date,
		Time:         a.Time,
		Status:       string(a.Status),
		Items:        items,
		Notes:        a.Notes,
		ScheduledBy:  a.ScheduledBy,
		CreatedAt:    a.CreatedAt,
		LastUpdated:  a.LastUpdated,
	}
}

// logActivity escribe una entrada de bitácora. Fire-and-forget: un fallo se
// registra en el log local y no afecta la operación principal.
func (uc *UseCase) logActivity(itemName, action string, actor entity.Actor, details string) {
	entry := &entity.ActivityLogEntry{
		ID:        uuid.New().String(),
		ItemName:  itemName,
		Action:    action,
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserRole:  actor.Role,
		Details:   details,
		Timestamp: time.Now(),
	}
	if err := uc.logRepo.Create(entry); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("action", action).Str("item", itemName).Msg("no se pudo escribir la bitácora")
	}
}
