package ledger

import (
	"testing"
	"time"

	"github.com/vineethtatipatri19/PGVMS/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sale(customerID uuid.UUID, amount int64) model.Transaction {
	return model.Transaction{
		ID:          uuid.New(),
		CustomerID:  customerID,
		Kind:        model.KindSale,
		TotalAmount: decimal.NewFromInt(amount),
		Date:        time.Now(),
	}
}

func payment(customerID uuid.UUID, amount int64) model.Transaction {
	d := decimal.NewFromInt(amount)
	return model.Transaction{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Kind:          model.KindPayment,
		PaymentAmount: &d,
		TotalAmount:   d,
		Date:          time.Now(),
	}
}

func TestBalances_SalesMinusPayments(t *testing.T) {
	c := model.Customer{ID: uuid.New(), Name: "Rajesh Kumar"}

	// ₹400 + ₹1500 sold, ₹500 paid → owes ₹1400
	balances := Balances([]model.Customer{c}, []model.Transaction{
		sale(c.ID, 400),
		sale(c.ID, 1500),
		payment(c.ID, 500),
	})

	assert.Equal(t, "1400", balances[c.ID].String())
}

func TestBalances_NoTransactionsIsZero(t *testing.T) {
	c := model.Customer{ID: uuid.New(), Name: "Amit Singh"}

	balances := Balances([]model.Customer{c}, nil)

	b, ok := balances[c.ID]
	require.True(t, ok, "customer without transactions must still be present")
	assert.True(t, b.IsZero())
}

func TestBalances_OverpaymentGoesNegative(t *testing.T) {
	c := model.Customer{ID: uuid.New()}

	balances := Balances([]model.Customer{c}, []model.Transaction{
		sale(c.ID, 300),
		payment(c.ID, 1000),
	})

	assert.Equal(t, "-700", balances[c.ID].String())
}

func TestBalances_OrderIndependent(t *testing.T) {
	c := model.Customer{ID: uuid.New()}
	txs := []model.Transaction{
		sale(c.ID, 250),
		payment(c.ID, 100),
		sale(c.ID, 75),
		payment(c.ID, 40),
	}
	reversed := []model.Transaction{txs[3], txs[2], txs[1], txs[0]}

	a := Balances([]model.Customer{c}, txs)
	b := Balances([]model.Customer{c}, reversed)

	assert.True(t, a[c.ID].Equal(b[c.ID]))
	assert.Equal(t, "185", a[c.ID].String())
}

func TestBalances_NilPaymentAmountCountsAsZero(t *testing.T) {
	c := model.Customer{ID: uuid.New()}
	malformed := model.Transaction{
		ID:         uuid.New(),
		CustomerID: c.ID,
		Kind:       model.KindPayment,
		// PaymentAmount deliberately nil
	}

	balances := Balances([]model.Customer{c}, []model.Transaction{sale(c.ID, 500), malformed})

	assert.Equal(t, "500", balances[c.ID].String())
}

func TestBalances_UnknownCustomerAccumulated(t *testing.T) {
	known := model.Customer{ID: uuid.New()}
	ghost := uuid.New()

	balances := Balances([]model.Customer{known}, []model.Transaction{sale(ghost, 120)})

	assert.Equal(t, "120", balances[ghost].String())
	assert.True(t, balances[known.ID].IsZero())
}

func TestWithBalances_PreservesOrder(t *testing.T) {
	a := model.Customer{ID: uuid.New(), Name: "A"}
	b := model.Customer{ID: uuid.New(), Name: "B"}

	out := WithBalances([]model.Customer{b, a}, []model.Transaction{sale(a.ID, 50)})

	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].Name)
	assert.True(t, out[0].OutstandingBalance.IsZero())
	assert.Equal(t, "A", out[1].Name)
	assert.Equal(t, "50", out[1].OutstandingBalance.String())
}
