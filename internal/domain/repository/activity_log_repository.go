package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// ActivityLogRepository define el puerto para la bitácora (append-only).
type ActivityLogRepository interface {
	Create(entry *entity.ActivityLogEntry) error
	List(limit, offset int) ([]*entity.ActivityLogEntry, error)
}
