package dto

import "github.com/shopspring/decimal"

// ReportQuery is bound from the query string of the report endpoints.
// Start and End are YYYY-MM-DD; both days are included in full.
type ReportQuery struct {
	Start string `form:"start" validate:"required,datetime=2006-01-02"`
	End   string `form:"end"   validate:"required,datetime=2006-01-02"`
	Item  string `form:"item"`
}

// StatementRequest queues a printable PDF statement for rendering, optionally
// mailed to the given address once written.
type StatementRequest struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end"   validate:"required,datetime=2006-01-02"`
	Email string `json:"email" validate:"omitempty,email"`
}

type ReportLineResponse struct {
	TransactionID string          `json:"transaction_id"`
	CustomerName  string          `json:"customer_name"`
	Date          string          `json:"date"`
	Kind          string          `json:"kind"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
}

type ReportResponse struct {
	Kind          string               `json:"kind"` // customer | business
	Title         string               `json:"title"`
	CustomerName  string               `json:"customer_name,omitempty"`
	Start         string               `json:"start"`
	End           string               `json:"end"`
	Lines         []ReportLineResponse `json:"lines"`
	TotalSales    decimal.Decimal      `json:"total_sales"`
	TotalPayments decimal.Decimal      `json:"total_payments"`
	FinalBalance  decimal.Decimal      `json:"final_balance"`
}

type StatementQueuedResponse struct {
	Queued bool   `json:"queued"`
	Detail string `json:"detail"`
}
