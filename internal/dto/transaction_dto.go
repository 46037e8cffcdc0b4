package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type SaleLineRequest struct {
	InventoryLotID string          `json:"inventory_lot_id" validate:"required,uuid"`
	Quantity       decimal.Decimal `json:"quantity"         validate:"required,gt=0"`
	Unit           string          `json:"unit"             validate:"required,oneof=kg lot"`
	PricePerUnit   decimal.Decimal `json:"price_per_unit"   validate:"required,gt=0"`
}

// RecordTransactionRequest creates (or, on PUT, wholly replaces) a ledger
// transaction. Kind decides which branch of the union is read: a sale needs
// at least one line, a payment needs a positive amount. CratesIssued, when
// set on a sale, also appends an issue entry to the crate ledger dated the
// same day — mirroring how a sale hands crates to the customer.
type RecordTransactionRequest struct {
	CustomerID    string            `json:"customer_id"    validate:"required,uuid"`
	Date          string            `json:"date"           validate:"required,datetime=2006-01-02"`
	Kind          string            `json:"kind"           validate:"required,oneof=sale payment"`
	Lines         []SaleLineRequest `json:"lines"          validate:"omitempty,dive"`
	PaymentAmount *decimal.Decimal  `json:"payment_amount"`
	CratesIssued  int               `json:"crates_issued"  validate:"min=0"`
}

// TransactionFilter is bound from the query string of GET /v1/transactions.
type TransactionFilter struct {
	View       string `form:"view,default=all"` // all | sales | payments
	CustomerID string `form:"customer_id" validate:"omitempty,uuid"`
	Item       string `form:"item"` // case-insensitive substring on line labels
}

// ─── Responses ───────────────────────────────────────────────────────────────

type SaleLineResponse struct {
	InventoryLotID string          `json:"inventory_lot_id"`
	ItemName       string          `json:"item_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	PricePerUnit   decimal.Decimal `json:"price_per_unit"`
	Total          decimal.Decimal `json:"total"`
}

type TransactionResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	Date          string             `json:"date"`
	Kind          string             `json:"kind"`
	Lines         []SaleLineResponse `json:"lines,omitempty"`
	PaymentAmount *decimal.Decimal   `json:"payment_amount,omitempty"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
}

type TransactionListResponse struct {
	Data  []TransactionResponse `json:"data"`
	Total int                   `json:"total"`
}
