package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación sobre PostgreSQL. La bitácora es append-only;
// cada inserción es independiente y no requiere coordinación entre filas.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de bitácora. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create persiste una entrada de bitácora.
func (r *ActivityLogRepo) Create(entry *entity.ActivityLogEntry) error {
	query := `
		INSERT INTO activity_logs (id, item_name, action, user_id, user_name, user_role, details, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ItemName, entry.Action,
		entry.UserID, entry.UserName, entry.UserRole,
		entry.Details, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List lista la bitácora con paginación, más recientes primero.
func (r *ActivityLogRepo) List(limit, offset int) ([]*entity.ActivityLogEntry, error) {
	query := `
		SELECT id, item_name, action, user_id, user_name, user_role, details, timestamp
		FROM activity_logs ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLogEntry
	for rows.Next() {
		var e entity.ActivityLogEntry
		if err := rows.Scan(
			&e.ID, &e.ItemName, &e.Action,
			&e.UserID, &e.UserName, &e.UserRole,
			&e.Details, &e.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
