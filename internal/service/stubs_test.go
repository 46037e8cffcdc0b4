package service

import (
	"context"
	"errors"

	"github.com/vineethtatipatri19/PGVMS/internal/model"
	"github.com/vineethtatipatri19/PGVMS/internal/repository"

	"github.com/google/uuid"
)

// ── In-memory repository stubs shared by the service tests ───────────────────

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
	order     []uuid.UUID
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.customers[id])
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return errors.New("not found")
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

type stubInventoryRepo struct {
	lots  map[uuid.UUID]*model.InventoryLot
	order []uuid.UUID
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{lots: make(map[uuid.UUID]*model.InventoryLot)}
}

func (r *stubInventoryRepo) Create(_ context.Context, lot *model.InventoryLot) error {
	if lot.ID == uuid.Nil {
		lot.ID = uuid.New()
	}
	r.lots[lot.ID] = lot
	r.order = append(r.order, lot.ID)
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryLot, error) {
	lot, ok := r.lots[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return lot, nil
}

func (r *stubInventoryRepo) List(_ context.Context) ([]model.InventoryLot, error) {
	out := make([]model.InventoryLot, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.lots[id])
	}
	return out, nil
}

func (r *stubInventoryRepo) Update(_ context.Context, lot *model.InventoryLot) error {
	if _, ok := r.lots[lot.ID]; !ok {
		return errors.New("not found")
	}
	r.lots[lot.ID] = lot
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.lots, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubInventoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.lots)), nil
}

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

type stubTransactionRepo struct {
	txs   map[uuid.UUID]*model.Transaction
	order []uuid.UUID
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{txs: make(map[uuid.UUID]*model.Transaction)}
}

func (r *stubTransactionRepo) Create(_ context.Context, tx *model.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	r.txs[tx.ID] = tx
	r.order = append(r.order, tx.ID)
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return tx, nil
}

func (r *stubTransactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.txs[id])
	}
	return out, nil
}

func (r *stubTransactionRepo) Replace(_ context.Context, tx *model.Transaction) error {
	if _, ok := r.txs[tx.ID]; !ok {
		return errors.New("not found")
	}
	r.txs[tx.ID] = tx
	return nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.txs[id]; !ok {
		return errors.New("not found")
	}
	delete(r.txs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

type stubCrateRepo struct {
	entries map[uuid.UUID]*model.CrateLedgerEntry
	order   []uuid.UUID
}

func newStubCrateRepo() *stubCrateRepo {
	return &stubCrateRepo{entries: make(map[uuid.UUID]*model.CrateLedgerEntry)}
}

func (r *stubCrateRepo) Create(_ context.Context, e *model.CrateLedgerEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.entries[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *stubCrateRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CrateLedgerEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return e, nil
}

func (r *stubCrateRepo) List(_ context.Context) ([]model.CrateLedgerEntry, error) {
	out := make([]model.CrateLedgerEntry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.entries[id])
	}
	return out, nil
}

func (r *stubCrateRepo) Update(_ context.Context, e *model.CrateLedgerEntry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return errors.New("not found")
	}
	r.entries[e.ID] = e
	return nil
}

func (r *stubCrateRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.entries[id]; !ok {
		return errors.New("not found")
	}
	delete(r.entries, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ repository.CrateRepository = (*stubCrateRepo)(nil)

// seedCustomer registers a customer in the stub and returns it.
func seedCustomer(repo *stubCustomerRepo, name string) *model.Customer {
	c := &model.Customer{ID: uuid.New(), Name: name}
	_ = repo.Create(context.Background(), c)
	return c
}
