package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// GetForUpdate se usa dentro de transacciones para serializar el
// read-modify-write de la cantidad (SELECT FOR UPDATE).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetForUpdate(id string) (*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	UpdateQuantity(id string, quantity int64) error
	Delete(id string) error
}
