package appointments_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/appointments"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

var testActor = entity.Actor{ID: "u-1", Name: "Ana Torres", Role: "admin"}

func newTestUseCase(db *memDB, logRepo *memLogRepo) *appointments.UseCase {
	return appointments.NewUseCase(db, &poolAptRepo{db: db}, logRepo, nil)
}

func seedItem(db *memDB, id, name string, quantity int64) {
	now := time.Now()
	db.putItem(&entity.Item{
		ID: id, Name: name, Quantity: quantity,
		CreatedAt: now, UpdatedAt: now,
	})
}

func seedAppointment(db *memDB, id string, status entity.AppointmentStatus, items []entity.LineItem) {
	now := time.Now()
	db.putAppointment(&entity.Appointment{
		ID:           id,
		SupplierID:   "sup-1",
		SupplierName: "ACME Supplies",
		Date:         "2026-09-15",
		Time:         "10:30",
		Status:       status,
		Items:        items,
		ScheduledBy:  testActor.Name,
		CreatedAt:    now,
		LastUpdated:  now,
	})
}

// Completar aplica todos los renglones: suma cantidades, escribe las filas IN
// del libro con snapshots correctos y deja la cita en completed.
func TestComplete_AplicaTodosLosRenglones(t *testing.T) {
	db := newMemDB()
	logRepo := &memLogRepo{}
	uc := newTestUseCase(db, logRepo)

	seedItem(db, "item-1", "A4 Bond Paper", 120)
	seedItem(db, "item-2", "HP Printer", 4)
	seedAppointment(db, "apt-42", entity.StatusConfirmed, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 50},
		{ItemID: "item-2", ItemName: "HP Printer", Quantity: 3},
	})

	result, err := uc.Complete(context.Background(), "apt-42", testActor)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemsRestocked)
	assert.Equal(t, int64(53), result.TotalUnits)

	assert.Equal(t, int64(170), db.getItem("item-1").Quantity)
	assert.Equal(t, int64(7), db.getItem("item-2").Quantity)
	assert.Equal(t, entity.StatusCompleted, db.getAppointment("apt-42").Status)

	txns := db.transactions()
	require.Len(t, txns, 2)
	first := txns[0]
	assert.Equal(t, entity.DirectionIN, first.Direction)
	assert.Equal(t, int64(50), first.Quantity)
	assert.Equal(t, int64(120), first.StockBefore)
	assert.Equal(t, int64(170), first.StockAfter)
	assert.Equal(t, "Restock from appointment with ACME Supplies", first.Reason)
	assert.Equal(t, testActor.ID, first.UserID)
	assert.Equal(t, testActor.Name, first.UserName)

	second := txns[1]
	assert.Equal(t, int64(4), second.StockBefore)
	assert.Equal(t, int64(7), second.StockAfter)

	// Bitácora: una entrada por renglón, después del commit.
	entries, err := logRepo.List(10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.ActionAppointmentCompleted, entries[0].Action)
	assert.Equal(t, "Completed restock appointment with ACME Supplies - Received 50 units", entries[0].Details)
}

// Completar dos veces: la segunda llamada recibe ErrInvalidState y no vuelve a
// tocar el inventario.
func TestComplete_Repetido_ErrInvalidState(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedItem(db, "item-1", "A4 Bond Paper", 100)
	seedAppointment(db, "apt-1", entity.StatusPending, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 5},
	})

	_, err := uc.Complete(context.Background(), "apt-1", testActor)
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), "apt-1", testActor)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Equal(t, int64(105), db.getItem("item-1").Quantity)
	assert.Len(t, db.transactions(), 1)
}

func TestComplete_CitaCancelada_ErrInvalidState(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedItem(db, "item-1", "A4 Bond Paper", 100)
	seedAppointment(db, "apt-1", entity.StatusCancelled, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 5},
	})

	_, err := uc.Complete(context.Background(), "apt-1", testActor)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, int64(100), db.getItem("item-1").Quantity)
}

func TestComplete_CitaInexistente_ErrNotFound(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	_, err := uc.Complete(context.Background(), "no-existe", testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Fallo a mitad de camino: el segundo renglón apunta a un artículo borrado.
// Nada queda aplicado: ni el primer renglón, ni el libro, ni el estado.
func TestComplete_ArticuloBorrado_RevierteTodo(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedItem(db, "item-1", "A4 Bond Paper", 100)
	seedItem(db, "item-3", "Stapler", 10)
	seedAppointment(db, "apt-1", entity.StatusConfirmed, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 20},
		{ItemID: "item-2", ItemName: "Deleted Item", Quantity: 5},
		{ItemID: "item-3", ItemName: "Stapler", Quantity: 2},
	})

	_, err := uc.Complete(context.Background(), "apt-1", testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, int64(100), db.getItem("item-1").Quantity)
	assert.Equal(t, int64(10), db.getItem("item-3").Quantity)
	assert.Empty(t, db.transactions())
	assert.Equal(t, entity.StatusConfirmed, db.getAppointment("apt-1").Status)
}

// Fallo al escribir el libro: mismas garantías de rollback.
func TestComplete_FalloEnLibro_RevierteTodo(t *testing.T) {
	db := newMemDB()
	db.failTxnCreate = true
	uc := newTestUseCase(db, &memLogRepo{})

	seedItem(db, "item-1", "A4 Bond Paper", 100)
	seedAppointment(db, "apt-1", entity.StatusPending, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 20},
	})

	_, err := uc.Complete(context.Background(), "apt-1", testActor)
	require.Error(t, err)

	assert.Equal(t, int64(100), db.getItem("item-1").Quantity)
	assert.Empty(t, db.transactions())
	assert.Equal(t, entity.StatusPending, db.getAppointment("apt-1").Status)
}

// Un fallo en la bitácora no revierte la operación: la cita queda completada y
// el inventario aplicado.
func TestComplete_FalloEnBitacora_NoRevierte(t *testing.T) {
	db := newMemDB()
	logRepo := &memLogRepo{err: errors.New("bitácora caída")}
	uc := newTestUseCase(db, logRepo)

	seedItem(db, "item-1", "A4 Bond Paper", 100)
	seedAppointment(db, "apt-1", entity.StatusPending, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 5},
	})

	result, err := uc.Complete(context.Background(), "apt-1", testActor)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsRestocked)
	assert.Equal(t, int64(105), db.getItem("item-1").Quantity)
}

// Dos completar concurrentes sobre el mismo ID: exactamente un éxito y un
// ErrInvalidState, y el stock sube una sola vez.
func TestComplete_Concurrente_UnSoloExito(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedItem(db, "item-1", "A4 Bond Paper", 100)
	seedAppointment(db, "apt-1", entity.StatusConfirmed, []entity.LineItem{
		{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 5},
	})

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, results[n] = uc.Complete(context.Background(), "apt-1", testActor)
		}(i)
	}
	wg.Wait()

	var okCount, invalidCount int
	for _, err := range results {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, domain.ErrInvalidState):
			invalidCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una llamada debe completar la cita")
	assert.Equal(t, 1, invalidCount)
	assert.Equal(t, int64(105), db.getItem("item-1").Quantity, "+5, no +10")
	assert.Len(t, db.transactions(), 1)
}

// Muchas citas completadas en paralelo sobre el mismo artículo: el read-modify-
// write serializado no pierde ninguna actualización.
func TestComplete_MuchasCitasSobreUnArticulo_SinPerdidas(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db, &memLogRepo{})

	seedItem(db, "item-1", "A4 Bond Paper", 0)
	const n = 20
	for i := 0; i < n; i++ {
		seedAppointment(db, fmt.Sprintf("apt-%d", i), entity.StatusPending, []entity.LineItem{
			{ItemID: "item-1", ItemName: "A4 Bond Paper", Quantity: 3},
		})
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Complete(context.Background(), fmt.Sprintf("apt-%d", i), testActor)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(n*3), db.getItem("item-1").Quantity)

	// El libro es consistente: cada fila encadena stock_before -> stock_after.
	for _, txn := range db.transactions() {
		assert.Equal(t, txn.StockBefore+txn.Quantity, txn.StockAfter)
	}
}
