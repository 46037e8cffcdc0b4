package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vineethtatipatri19/PGVMS/internal/model"
)

// InventoryRepository is the data access contract for inventory lots.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs. List hands back a fresh snapshot
// slice per call — callers never receive references into shared state.
type InventoryRepository interface {
	Create(ctx context.Context, lot *model.InventoryLot) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryLot, error)
	List(ctx context.Context) ([]model.InventoryLot, error)
	Update(ctx context.Context, lot *model.InventoryLot) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, lot *model.InventoryLot) error {
	return r.db.WithContext(ctx).Create(lot).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryLot, error) {
	var lot model.InventoryLot
	err := r.db.WithContext(ctx).First(&lot, "id = ?", id).Error
	return &lot, err
}

// List returns lots in insertion order so the FEFO ranker's tie-break is the
// original creation order.
func (r *inventoryRepo) List(ctx context.Context) ([]model.InventoryLot, error) {
	var lots []model.InventoryLot
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&lots).Error
	return lots, err
}

func (r *inventoryRepo) Update(ctx context.Context, lot *model.InventoryLot) error {
	return r.db.WithContext(ctx).Save(lot).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InventoryLot{}, "id = ?", id).Error
}

func (r *inventoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.InventoryLot{}).Count(&n).Error
	return n, err
}
