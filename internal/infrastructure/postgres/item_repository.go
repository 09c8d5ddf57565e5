package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, category, quantity, reorder_level, price, location, supplier_id, supplier_name, created_at, updated_at`

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	supplierID := (*string)(nil)
	if item.SupplierID != "" {
		supplierID = &item.SupplierID
	}
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Quantity, item.ReorderLevel,
		item.Price, item.Location, supplierID, item.SupplierName,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
// Serializa el read-modify-write de la cantidad entre transacciones concurrentes.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista artículos con paginación, más recientes primero.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Update reescribe todos los campos mutables del artículo (camino de edición directa).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, category = $3, quantity = $4, reorder_level = $5,
		    price = $6, location = $7, supplier_id = $8, supplier_name = $9, updated_at = $10
		WHERE id = $1`
	supplierID := (*string)(nil)
	if item.SupplierID != "" {
		supplierID = &item.SupplierID
	}
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Quantity, item.ReorderLevel,
		item.Price, item.Location, supplierID, item.SupplierName, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update item: no rows affected")
	}
	return nil
}

// UpdateQuantity escribe la cantidad resultante de un ajuste. Usar solo con la
// fila ya bloqueada por GetForUpdate dentro de la misma transacción.
func (r *ItemRepo) UpdateQuantity(id string, quantity int64) error {
	query := `UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update item quantity: no rows affected")
	}
	return nil
}

// Delete elimina un artículo. El historial del libro no se altera.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (r *ItemRepo) scanRow(rows pgx.Rows) (*entity.Item, error) {
	item, err := scanItem(rows)
	if err != nil {
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return item, nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	var supplierID *string
	err := row.Scan(
		&i.ID, &i.Name, &i.Category, &i.Quantity, &i.ReorderLevel,
		&i.Price, &i.Location, &supplierID, &i.SupplierName,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplierID != nil {
		i.SupplierID = *supplierID
	}
	return &i, nil
}
