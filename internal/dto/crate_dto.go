package dto

// SaveCrateEntryRequest records crates issued to or returned by a customer.
// Exactly one direction per entry, picked by Type.
type SaveCrateEntryRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	Type       string `json:"type"        validate:"required,oneof=issue return"`
	Quantity   int    `json:"quantity"    validate:"required,min=1"`
}

type CrateEntryResponse struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
	Date           string `json:"date"`
	CratesIssued   int    `json:"crates_issued"`
	CratesReturned int    `json:"crates_returned"`
	// Balance is the customer's running crate total as of this entry,
	// derived chronologically on every read.
	Balance int `json:"balance"`
}

type CrateSummaryResponse struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Balance      int    `json:"balance"`
}

type CrateLedgerResponse struct {
	View      string                 `json:"view"` // all | issued | returned
	Entries   []CrateEntryResponse   `json:"entries"`
	Summaries []CrateSummaryResponse `json:"summaries"`
}
