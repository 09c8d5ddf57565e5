package repository

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// TransactionRepository define el puerto para el libro de transacciones.
// Las filas son inmutables: solo Create y lecturas.
type TransactionRepository interface {
	Create(txn *entity.Transaction) error
	List(limit, offset int) ([]*entity.Transaction, error)
	ListByItem(itemID string, from, to *time.Time) ([]*entity.Transaction, error)
}
