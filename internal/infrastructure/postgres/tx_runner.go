package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bodega-api/internal/application/appointments"
	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and appointments.AppointmentTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ appointments.AppointmentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido es el default: cualquier error (o
// pánico, o cancelación del ctx) deja la BD exactamente como estaba.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w: %w", domain.ErrPersistenceUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	txnRepo := NewTransactionRepository(tx)

	if err := fn(itemRepo, txnRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w: %w", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

// RunAppointment inicia una transacción con los repos que necesita el
// coordinador de citas (cita + artículos + libro).
func (r *TxRunner) RunAppointment(ctx context.Context, fn func(
	aptRepo repository.AppointmentRepository,
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w: %w", domain.ErrPersistenceUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	aptRepo := NewAppointmentRepository(tx)
	itemRepo := NewItemRepository(tx)
	txnRepo := NewTransactionRepository(tx)

	if err := fn(aptRepo, itemRepo, txnRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w: %w", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}
