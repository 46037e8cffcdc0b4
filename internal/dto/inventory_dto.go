package dto

import "github.com/shopspring/decimal"

// SaveLotRequest creates or fully replaces an inventory lot.
// Dates are YYYY-MM-DD.
type SaveLotRequest struct {
	Name         string          `json:"name"          validate:"required"`
	Variant      string          `json:"variant"`
	LotNumber    string          `json:"lot_number"    validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"      validate:"required,gt=0"`
	Unit         string          `json:"unit"          validate:"required,oneof=kg lot"`
	PurchaseDate string          `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate   string          `json:"expiry_date"   validate:"required,datetime=2006-01-02"`
}

// LotResponse is a lot annotated with its FEFO rank data. The list endpoint
// returns lots already in FEFO order; SellFirst marks the single lot to move
// next.
type LotResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Variant      string          `json:"variant"`
	LotNumber    string          `json:"lot_number"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PurchaseDate string          `json:"purchase_date"`
	ExpiryDate   string          `json:"expiry_date"`
	Status       string          `json:"status"` // fresh | expiring_soon | expired
	DaysLeft     int             `json:"days_left"`
	SellFirst    bool            `json:"sell_first"`
}
