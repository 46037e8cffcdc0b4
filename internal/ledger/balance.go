package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vineethtatipatri19/PGVMS/internal/model"
)

// CustomerWithBalance pairs a customer with their derived outstanding
// balance: Σ sale totals − Σ payment amounts over the full history.
// Positive = owes money, negative = credit. Never clamped.
type CustomerWithBalance struct {
	model.Customer
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// Balances folds the transaction stream into per-customer signed totals.
// Every known customer starts at zero so customers without transactions
// still report 0 rather than being absent. Transactions for customer ids
// not present in customers are accumulated too (lazy init on first hit).
// Pure summation — iteration order never affects the result.
func Balances(customers []model.Customer, txs []model.Transaction) map[uuid.UUID]decimal.Decimal {
	balances := make(map[uuid.UUID]decimal.Decimal, len(customers))
	for _, c := range customers {
		balances[c.ID] = decimal.Zero
	}
	for _, tx := range txs {
		switch tx.Kind {
		case model.KindSale:
			balances[tx.CustomerID] = balances[tx.CustomerID].Add(tx.TotalAmount)
		case model.KindPayment:
			balances[tx.CustomerID] = balances[tx.CustomerID].Sub(paymentAmount(tx))
		}
		// Unknown kinds are malformed records: dropped, not fatal.
	}
	return balances
}

// WithBalances returns the customers in their given order, each annotated
// with the derived balance.
func WithBalances(customers []model.Customer, txs []model.Transaction) []CustomerWithBalance {
	balances := Balances(customers, txs)
	out := make([]CustomerWithBalance, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerWithBalance{Customer: c, OutstandingBalance: balances[c.ID]})
	}
	return out
}

// paymentAmount defaults a missing payment amount to zero so one malformed
// payment record cannot poison the whole aggregation.
func paymentAmount(tx model.Transaction) decimal.Decimal {
	if tx.PaymentAmount == nil {
		return decimal.Zero
	}
	return *tx.PaymentAmount
}
