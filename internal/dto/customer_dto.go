package dto

import "github.com/shopspring/decimal"

type SaveCustomerRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	PhotoURL      string `json:"photo_url" validate:"omitempty,url"`
	KYCVerified   bool   `json:"kyc_verified"`
}

// CustomerResponse always carries the derived outstanding balance —
// Σ sales − Σ payments, recomputed from the full transaction history on
// every read.
type CustomerResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Address            string          `json:"address"`
	ContactNumber      string          `json:"contact_number"`
	PhotoURL           string          `json:"photo_url"`
	KYCVerified        bool            `json:"kyc_verified"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}
