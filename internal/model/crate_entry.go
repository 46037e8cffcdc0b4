package model

import (
	"time"

	"github.com/google/uuid"
)

// CrateLedgerEntry records returnable crates issued to or returned by a
// customer. The running balance column is intentionally absent: balances are
// recomputed chronologically on every read (see internal/ledger package).
// The UI only ever sets one of the two quantities per entry, but the model
// permits both.
type CrateLedgerEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Date           time.Time `gorm:"index;not null" json:"date"`
	CratesIssued   int       `gorm:"not null;default:0" json:"crates_issued"`
	CratesReturned int       `gorm:"not null;default:0" json:"crates_returned"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (CrateLedgerEntry) TableName() string { return "crate_ledger_entries" }
