package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction kinds. A transaction is a tagged union: a sale carries Lines,
// a payment carries PaymentAmount. The other field is empty/nil.
const (
	KindSale    = "sale"
	KindPayment = "payment"
)

// Transaction is one ledger event for a customer. TotalAmount is maintained
// by the service layer so that it always equals the sum of line totals for a
// sale, or PaymentAmount for a payment. Edits replace the whole record.
type Transaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	Kind       string    `gorm:"not null" json:"kind"` // "sale" | "payment"

	// Sale only
	Lines []SaleLine `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`

	// Payment only
	PaymentAmount *decimal.Decimal `gorm:"type:decimal(12,2)" json:"payment_amount,omitempty"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// SaleLine is one priced line of a sale. Total = Quantity × PricePerUnit.
type SaleLine struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TransactionID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	InventoryLotID uuid.UUID       `gorm:"type:uuid;not null" json:"inventory_lot_id"`
	ItemName       string          `gorm:"not null" json:"item_name"` // snapshot: "Tomatoes (Grade A)"
	Quantity       decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantity"`
	Unit           string          `gorm:"not null" json:"unit"`
	PricePerUnit   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_unit"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Position       int             `gorm:"not null;default:0" json:"-"` // preserves line order
}

func (SaleLine) TableName() string { return "sale_lines" }
