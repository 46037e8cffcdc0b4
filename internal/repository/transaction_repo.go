package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vineethtatipatri19/PGVMS/internal/model"
)

// TransactionRepository persists the sales/payments ledger. Replace rewrites
// the whole record including its lines: a transaction is immutable except
// through full replacement, which keeps the sale-total invariant enforceable
// in one place.
type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
	Replace(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository { return &transactionRepo{db: db} }

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var tx model.Transaction
	err := r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&tx, "id = ?", id).Error
	return &tx, err
}

func (r *transactionRepo) List(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("created_at ASC").Find(&txs).Error
	return txs, err
}

// Replace swaps the stored record for tx wholesale: old sale lines are
// removed and the new set inserted in the same DB transaction.
func (r *transactionRepo) Replace(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Delete(&model.SaleLine{}, "transaction_id = ?", tx.ID).Error; err != nil {
			return err
		}
		return dbtx.Session(&gorm.Session{FullSaveAssociations: true}).Save(tx).Error
	})
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Delete(&model.SaleLine{}, "transaction_id = ?", id).Error; err != nil {
			return err
		}
		return dbtx.Delete(&model.Transaction{}, "id = ?", id).Error
	})
}
