package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vineethtatipatri19/PGVMS/internal/model"
)

type CrateRepository interface {
	Create(ctx context.Context, e *model.CrateLedgerEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CrateLedgerEntry, error)
	List(ctx context.Context) ([]model.CrateLedgerEntry, error)
	Update(ctx context.Context, e *model.CrateLedgerEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type crateRepo struct{ db *gorm.DB }

func NewCrateRepository(db *gorm.DB) CrateRepository { return &crateRepo{db: db} }

func (r *crateRepo) Create(ctx context.Context, e *model.CrateLedgerEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *crateRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CrateLedgerEntry, error) {
	var e model.CrateLedgerEntry
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

// List keeps insertion order: the ledger computation's date sort is stable,
// so same-date entries must arrive in creation order for deterministic
// running balances.
func (r *crateRepo) List(ctx context.Context) ([]model.CrateLedgerEntry, error) {
	var entries []model.CrateLedgerEntry
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&entries).Error
	return entries, err
}

func (r *crateRepo) Update(ctx context.Context, e *model.CrateLedgerEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *crateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CrateLedgerEntry{}, "id = ?", id).Error
}
