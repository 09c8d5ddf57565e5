package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación de AppointmentRepository sobre PostgreSQL
// (usable con pool o tx). Los renglones viven en una columna JSONB: el codec
// JSON de pgx los serializa y deserializa sin pérdida de orden ni de campos.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador de citas. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

const appointmentColumns = `id, supplier_id, supplier_name, date, time, status, items, notes, scheduled_by, created_at, last_updated`

// Create persiste una nueva cita.
func (r *AppointmentRepo) Create(apt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		apt.ID, apt.SupplierID, apt.SupplierName, apt.Date, apt.Time,
		string(apt.Status), apt.Items, apt.Notes, apt.ScheduledBy,
		apt.CreatedAt, apt.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID. Devuelve nil si no existe.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la cita y bloquea su fila (SELECT FOR UPDATE). Dos
// completar/cancelar concurrentes sobre el mismo ID se serializan aquí: el
// segundo espera el lock y relee el estado ya terminal.
func (r *AppointmentRepo) GetForUpdate(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista citas ordenadas por (fecha, hora) ascendente.
func (r *AppointmentRepo) List(limit, offset int) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY date ASC, time ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, apt)
	}
	return list, rows.Err()
}

// Update reescribe los campos editables de la cita (mientras no es terminal;
// el guard vive en el caso de uso, con la fila bloqueada).
func (r *AppointmentRepo) Update(apt *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET supplier_id = $2, supplier_name = $3, date = $4, time = $5,
		    status = $6, items = $7, notes = $8, last_updated = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		apt.ID, apt.SupplierID, apt.SupplierName, apt.Date, apt.Time,
		string(apt.Status), apt.Items, apt.Notes, apt.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update appointment: no rows affected")
	}
	return nil
}

// UpdateStatus escribe únicamente el estado y la marca de última actualización.
func (r *AppointmentRepo) UpdateStatus(apt *entity.Appointment) error {
	query := `UPDATE appointments SET status = $2, last_updated = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, apt.ID, string(apt.Status), apt.LastUpdated)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update appointment status: no rows affected")
	}
	return nil
}

func (r *AppointmentRepo) scanOne(row pgx.Row) (*entity.Appointment, error) {
	apt, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return apt, nil
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	var status string
	err := row.Scan(
		&a.ID, &a.SupplierID, &a.SupplierName, &a.Date, &a.Time,
		&status, &a.Items, &a.Notes, &a.ScheduledBy,
		&a.CreatedAt, &a.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	a.Status = entity.AppointmentStatus(status)
	return &a, nil
}
