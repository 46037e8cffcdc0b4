package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vineethtatipatri19/PGVMS/internal/model"
)

// ReportKind distinguishes a single-customer statement from a business-wide
// transaction report.
type ReportKind string

const (
	ReportKindCustomer ReportKind = "customer"
	ReportKindBusiness ReportKind = "business"
)

// DateRange bounds a report. Both ends are inclusive after normalization.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normalizes the bounds: start snaps to 00:00:00.000 and end to
// 23:59:59.999 of its day, so a transaction at any time of the end date is
// still included.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		End:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, end.Location()),
	}
}

// Contains reports whether t falls inside the inclusive range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ReportFilter narrows the transaction set before aggregation.
type ReportFilter struct {
	// CustomerID keeps only that customer's transactions when set.
	CustomerID *uuid.UUID
	// ItemName is a case-insensitive substring match against sale-line item
	// labels. While active, payments are excluded entirely — a payment has no
	// lines to match.
	ItemName string
}

// ReportLine is a transaction with the customer name resolved at report
// generation time. The name is a snapshot: later customer edits must not
// retroactively alter an already printed statement.
type ReportLine struct {
	Transaction  model.Transaction `json:"transaction"`
	CustomerName string            `json:"customer_name"`
}

// Report is a date-range-scoped, read-only aggregation of transactions.
// Lines are in print order (oldest first); DisplayOrder derives the
// newest-first ordering for the on-screen ledger list.
type Report struct {
	Kind          ReportKind      `json:"kind"`
	Title         string          `json:"title"`
	Lines         []ReportLine    `json:"lines"`
	Customer      *model.Customer `json:"customer,omitempty"`
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	FinalBalance  decimal.Decimal `json:"final_balance"`
}

// BuildReport filters the transaction stream by range and filter, resolves
// customer names, and aggregates the statement totals. Transactions whose
// customer is unknown still appear, labelled "Unknown Customer", and a
// payment with a missing amount counts as zero — a single malformed record
// never aborts the whole report.
func BuildReport(txs []model.Transaction, customers []model.Customer, rng DateRange, filter ReportFilter) Report {
	byID := make(map[uuid.UUID]model.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	needle := strings.ToLower(filter.ItemName)

	lines := make([]ReportLine, 0)
	totalSales := decimal.Zero
	totalPayments := decimal.Zero
	for _, tx := range txs {
		if !rng.Contains(tx.Date) {
			continue
		}
		if filter.CustomerID != nil && tx.CustomerID != *filter.CustomerID {
			continue
		}
		if needle != "" && !matchesItem(tx, needle) {
			continue
		}

		name := "Unknown Customer"
		if c, ok := byID[tx.CustomerID]; ok {
			name = c.Name
		}
		lines = append(lines, ReportLine{Transaction: tx, CustomerName: name})

		switch tx.Kind {
		case model.KindSale:
			totalSales = totalSales.Add(tx.TotalAmount)
		case model.KindPayment:
			totalPayments = totalPayments.Add(paymentAmount(tx))
		}
	}

	// Print body is oldest first, stable on input order for same-instant rows.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Transaction.Date.Before(lines[j].Transaction.Date)
	})

	report := Report{
		Kind:          ReportKindBusiness,
		Title:         "Business Transaction Report",
		Lines:         lines,
		Start:         rng.Start,
		End:           rng.End,
		TotalSales:    totalSales,
		TotalPayments: totalPayments,
		FinalBalance:  totalSales.Sub(totalPayments),
	}
	if filter.CustomerID != nil {
		report.Kind = ReportKindCustomer
		report.Title = "Customer Transaction Statement"
		if c, ok := byID[*filter.CustomerID]; ok {
			snapshot := c
			report.Customer = &snapshot
		}
	}
	return report
}

// DisplayOrder returns a newest-first copy of the lines for the on-screen
// ledger list. The print body and the screen list consume the same filtered
// set with their own deterministic order each.
func DisplayOrder(lines []ReportLine) []ReportLine {
	out := make([]ReportLine, len(lines))
	copy(out, lines)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Transaction.Date.After(out[j].Transaction.Date)
	})
	return out
}

// matchesItem reports whether any sale line's label contains the lowercased
// needle. Payments never match an item filter.
func matchesItem(tx model.Transaction, needle string) bool {
	if tx.Kind != model.KindSale {
		return false
	}
	for _, line := range tx.Lines {
		if strings.Contains(strings.ToLower(line.ItemName), needle) {
			return true
		}
	}
	return false
}
