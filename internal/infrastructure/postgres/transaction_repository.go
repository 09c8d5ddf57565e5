package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro es inmutable: solo INSERT y SELECT, nunca UPDATE ni DELETE.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, item_id, item_name, direction, quantity, reason, user_id, user_name, user_role, timestamp, stock_before, stock_after`

// Create persiste una fila del libro.
func (r *TransactionRepo) Create(txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.ItemID, txn.ItemName, txn.Direction, txn.Quantity, txn.Reason,
		txn.UserID, txn.UserName, txn.UserRole, txn.Timestamp,
		txn.StockBefore, txn.StockAfter,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// List lista el libro con paginación, más recientes primero.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListByItem lista las transacciones de un artículo en orden cronológico
// ascendente (el orden con el que se repliega el libro para auditoría).
func (r *TransactionRepo) ListByItem(itemID string, from, to *time.Time) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE item_id = $1`
	args := []any{itemID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY timestamp ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions by item: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.ItemID, &t.ItemName, &t.Direction, &t.Quantity, &t.Reason,
			&t.UserID, &t.UserName, &t.UserRole, &t.Timestamp,
			&t.StockBefore, &t.StockAfter,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
