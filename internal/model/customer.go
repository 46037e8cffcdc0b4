package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a wholesale buyer. The outstanding balance is never stored on
// the row — it is derived from the transaction stream on every read
// (see internal/ledger.Balances).
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"index;not null" json:"name"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contact_number"`
	PhotoURL      string    `json:"photo_url"`
	// KYCVerified mirrors the Aadhaar verification flag captured at onboarding.
	KYCVerified bool      `gorm:"not null;default:false" json:"kyc_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
