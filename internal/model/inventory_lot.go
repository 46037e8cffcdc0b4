package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unit values accepted for inventory quantities and sale lines.
const (
	UnitKg  = "kg"
	UnitLot = "lot"
)

// InventoryLot is a distinct batch of produce sharing one purchase date and
// one expiry date. Quantity is NOT decremented when a sale references the lot:
// stock-on-hand and the sale ledger are kept independent on purpose.
type InventoryLot struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string          `gorm:"index;not null" json:"name"`
	Variant      string          `json:"variant"` // e.g. "Grade A", "Organic"
	LotNumber    string          `gorm:"not null" json:"lot_number"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantity"`
	Unit         string          `gorm:"not null;default:'kg'" json:"unit"` // "kg" | "lot"
	PurchaseDate time.Time       `gorm:"not null" json:"purchase_date"`
	ExpiryDate   time.Time       `gorm:"index;not null" json:"expiry_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (InventoryLot) TableName() string { return "inventory_lots" }
