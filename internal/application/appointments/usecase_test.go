package appointments_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

func TestSchedule_CreaCitaPendiente(t *testing.T) {
	db := newMemDB()
	logRepo := &memLogRepo{}
	uc := newTestUseCase(db, logRepo)

	resp, err := uc.Schedule(testActor, dto.ScheduleAppointmentRequest{
		SupplierID:   "sup-1",
		SupplierName: "ACME Supplies",
		Date:         "2026-09-15",
		Time:         "10:30",
		Items: []dto.LineItemDTO{
			{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 50},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, testActor.Name, resp.ScheduledBy)
	require.Len(t, resp.Items, 1)

	stored := db.getAppointment(resp.ID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.StatusPending, stored.Status)

	entries, _ := logRepo.List(10, 0)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionAppointmentScheduled, entries[0].Action)
}

func TestSchedule_SinRenglones_ErrInvalidInput(t *testing.T) {
	uc := newTestUseCase(newMemDB(), &memLogRepo{})

	_, err := uc.Schedule(testActor, dto.ScheduleAppointmentRequest{
		SupplierID:   "sup-1",
		SupplierName: "ACME Supplies",
		Date:         "2026-09-15",
		Time:         "10:30",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSchedule_CantidadCero_ErrInvalidInput(t *testing.T) {
	uc := newTestUseCase(newMemDB(), &memLogRepo{})

	_, err := uc.Schedule(testActor, dto.ScheduleAppointmentRequest{
		SupplierID:   "sup-1",
		SupplierName: "ACME Supplies",
		Date:         "2026-09-15",
		Time:         "10:30",
		Items: []dto.LineItemDTO{
			{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 0},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_PendingAConfirmed(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedAppointment(db, "apt-1", entity.StatusPending, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 5},
	})

	status := "confirmed"
	resp, err := uc.Update(context.Background(), "apt-1", testActor, dto.UpdateAppointmentRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, entity.StatusConfirmed, db.getAppointment("apt-1").Status)
}

// Los estados terminales solo se alcanzan por Complete/Cancel, nunca por Update.
func TestUpdate_HaciaTerminal_ErrInvalidState(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedAppointment(db, "apt-1", entity.StatusPending, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 5},
	})

	for _, target := range []string{"completed", "cancelled"} {
		status := target
		_, err := uc.Update(context.Background(), "apt-1", testActor, dto.UpdateAppointmentRequest{
			Status: &status,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidState, "status %s", target)
	}
}

func TestUpdate_CitaTerminal_ErrInvalidState(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedAppointment(db, "apt-1", entity.StatusCompleted, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 5},
	})

	notes := "cambio tardío"
	_, err := uc.Update(context.Background(), "apt-1", testActor, dto.UpdateAppointmentRequest{
		Notes: &notes,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestUpdate_CitaInexistente_ErrNotFound(t *testing.T) {
	uc := newTestUseCase(newMemDB(), &memLogRepo{})

	notes := "n"
	_, err := uc.Update(context.Background(), "no-existe", testActor, dto.UpdateAppointmentRequest{
		Notes: &notes,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cancelar no toca cantidades ni el libro: el único efecto es el estado.
func TestCancel_NoTocaInventario(t *testing.T) {
	db := newMemDB()
	logRepo := &memLogRepo{}
	uc := newTestUseCase(db, logRepo)

	seedItem(db, "item-1", "A4 Bond Paper", 100)
	seedAppointment(db, "apt-1", entity.StatusConfirmed, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 50},
	})

	err := uc.Cancel(context.Background(), "apt-1", testActor)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCancelled, db.getAppointment("apt-1").Status)
	assert.Equal(t, int64(100), db.getItem("item-1").Quantity)
	assert.Empty(t, db.transactions())

	entries, _ := logRepo.List(10, 0)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionAppointmentCancelled, entries[0].Action)
	assert.Equal(t, "Cancelled restock appointment with ACME Supplies scheduled for 2026-09-15", entries[0].Details)
}

func TestCancel_CitaYaCompletada_ErrInvalidState(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedAppointment(db, "apt-1", entity.StatusCompleted, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 5},
	})

	err := uc.Cancel(context.Background(), "apt-1", testActor)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
