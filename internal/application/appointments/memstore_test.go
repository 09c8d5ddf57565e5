package appointments_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// memDB emula la base de datos para los tests del coordinador: las escrituras
// dentro de RunAppointment se aplican sobre una copia y solo se publican si fn
// termina sin error (commit); un error las descarta (rollback). El mutex se
// sostiene durante toda la transacción, serializando a los concurrentes igual
// que el bloqueo de fila en PostgreSQL.
type memDB struct {
	mu    sync.Mutex
	apts  map[string]*entity.Appointment
	items map[string]*entity.Item
	txns  []*entity.Transaction

	failTxnCreate bool
}

func newMemDB() *memDB {
	return &memDB{
		apts:  make(map[string]*entity.Appointment),
		items: make(map[string]*entity.Item),
	}
}

func (db *memDB) putAppointment(a *entity.Appointment) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.apts[a.ID] = cloneApt(a)
}

func (db *memDB) putItem(i *entity.Item) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.items[i.ID] = cloneItem(i)
}

func (db *memDB) getAppointment(id string) *entity.Appointment {
	db.mu.Lock()
	defer db.mu.Unlock()
	return cloneApt(db.apts[id])
}

func (db *memDB) getItem(id string) *entity.Item {
	db.mu.Lock()
	defer db.mu.Unlock()
	return cloneItem(db.items[id])
}

func (db *memDB) transactions() []*entity.Transaction {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]*entity.Transaction, len(db.txns))
	copy(out, db.txns)
	return out
}

// RunAppointment implementa appointments.AppointmentTxRunner.
func (db *memDB) RunAppointment(ctx context.Context, fn func(
	aptRepo repository.AppointmentRepository,
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	staged := &txState{
		apts:          make(map[string]*entity.Appointment, len(db.apts)),
		items:         make(map[string]*entity.Item, len(db.items)),
		txns:          append([]*entity.Transaction(nil), db.txns...),
		failTxnCreate: db.failTxnCreate,
	}
	for id, a := range db.apts {
		staged.apts[id] = cloneApt(a)
	}
	for id, i := range db.items {
		staged.items[id] = cloneItem(i)
	}

	if err := fn(&txAptRepo{s: staged}, &txItemRepo{s: staged}, &txTxnRepo{s: staged}); err != nil {
		return err
	}

	db.apts = staged.apts
	db.items = staged.items
	db.txns = staged.txns
	return nil
}

// txState es la copia de trabajo de una transacción en curso.
type txState struct {
	apts          map[string]*entity.Appointment
	items         map[string]*entity.Item
	txns          []*entity.Transaction
	failTxnCreate bool
}

type txAptRepo struct{ s *txState }

func (r *txAptRepo) Create(apt *entity.Appointment) error {
	r.s.apts[apt.ID] = cloneApt(apt)
	return nil
}

func (r *txAptRepo) GetByID(id string) (*entity.Appointment, error) {
	return cloneApt(r.s.apts[id]), nil
}

func (r *txAptRepo) GetForUpdate(id string) (*entity.Appointment, error) {
	return cloneApt(r.s.apts[id]), nil
}

func (r *txAptRepo) List(limit, offset int) ([]*entity.Appointment, error) {
	var out []*entity.Appointment
	for _, a := range r.s.apts {
		out = append(out, cloneApt(a))
	}
	return out, nil
}

func (r *txAptRepo) Update(apt *entity.Appointment) error {
	if _, ok := r.s.apts[apt.ID]; !ok {
		return errors.New("update appointment: no rows affected")
	}
	r.s.apts[apt.ID] = cloneApt(apt)
	return nil
}

func (r *txAptRepo) UpdateStatus(apt *entity.Appointment) error {
	existing, ok := r.s.apts[apt.ID]
	if !ok {
		return errors.New("update appointment status: no rows affected")
	}
	existing.Status = apt.Status
	existing.LastUpdated = apt.LastUpdated
	return nil
}

type txItemRepo struct{ s *txState }

func (r *txItemRepo) Create(item *entity.Item) error {
	r.s.items[item.ID] = cloneItem(item)
	return nil
}

func (r *txItemRepo) GetByID(id string) (*entity.Item, error) {
	return cloneItem(r.s.items[id]), nil
}

func (r *txItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return cloneItem(r.s.items[id]), nil
}

func (r *txItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		out = append(out, cloneItem(i))
	}
	return out, nil
}

func (r *txItemRepo) Update(item *entity.Item) error {
	if _, ok := r.s.items[item.ID]; !ok {
		return errors.New("update item: no rows affected")
	}
	r.s.items[item.ID] = cloneItem(item)
	return nil
}

func (r *txItemRepo) UpdateQuantity(id string, quantity int64) error {
	item, ok := r.s.items[id]
	if !ok {
		return errors.New("update item quantity: no rows affected")
	}
	item.Quantity = quantity
	return nil
}

func (r *txItemRepo) Delete(id string) error {
	delete(r.s.items, id)
	return nil
}

type txTxnRepo struct{ s *txState }

func (r *txTxnRepo) Create(txn *entity.Transaction) error {
	if r.s.failTxnCreate {
		return domain.ErrPersistenceUnavailable
	}
	cp := *txn
	r.s.txns = append(r.s.txns, &cp)
	return nil
}

func (r *txTxnRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, len(r.s.txns))
	copy(out, r.s.txns)
	return out, nil
}

func (r *txTxnRepo) ListByItem(itemID string, from, to *time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.s.txns {
		if t.ItemID == itemID {
			out = append(out, t)
		}
	}
	return out, nil
}

// poolAptRepo vista fuera de transacción (equivale a consultas con el pool).
type poolAptRepo struct{ db *memDB }

func (r *poolAptRepo) Create(apt *entity.Appointment) error {
	r.db.putAppointment(apt)
	return nil
}

func (r *poolAptRepo) GetByID(id string) (*entity.Appointment, error) {
	return r.db.getAppointment(id), nil
}

func (r *poolAptRepo) GetForUpdate(id string) (*entity.Appointment, error) {
	return r.db.getAppointment(id), nil
}

func (r *poolAptRepo) List(limit, offset int) ([]*entity.Appointment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Appointment
	for _, a := range r.db.apts {
		out = append(out, cloneApt(a))
	}
	return out, nil
}

func (r *poolAptRepo) Update(apt *entity.Appointment) error {
	r.db.putAppointment(apt)
	return nil
}

func (r *poolAptRepo) UpdateStatus(apt *entity.Appointment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.apts[apt.ID]
	if !ok {
		return errors.New("update appointment status: no rows affected")
	}
	existing.Status = apt.Status
	existing.LastUpdated = apt.LastUpdated
	return nil
}

// memLogRepo bitácora en memoria, con fallo inyectable.
type memLogRepo struct {
	mu      sync.Mutex
	entries []*entity.ActivityLogEntry
	err     error
}

func (r *memLogRepo) Create(entry *entity.ActivityLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memLogRepo) List(limit, offset int) ([]*entity.ActivityLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.ActivityLogEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func cloneApt(a *entity.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Items = append([]entity.LineItem(nil), a.Items...)
	return &cp
}

func cloneItem(i *entity.Item) *entity.Item {
	if i == nil {
		return nil
	}
	cp := *i
	return &cp
}
