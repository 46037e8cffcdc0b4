package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vineethtatipatri19/PGVMS/internal/ledger"
	"github.com/vineethtatipatri19/PGVMS/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStatementPDF_WritesFile(t *testing.T) {
	dir := t.TempDir()
	customer := model.Customer{ID: uuid.New(), Name: "Rajesh Kumar", Address: "Azadpur Mandi, Delhi"}
	amount := decimal.NewFromInt(500)

	report := ledger.Report{
		Kind:     ledger.ReportKindCustomer,
		Title:    "Customer Transaction Statement",
		Customer: &customer,
		Start:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 5, 10, 23, 59, 59, 0, time.UTC),
		Lines: []ledger.ReportLine{
			{
				CustomerName: "Rajesh Kumar",
				Transaction: model.Transaction{
					ID: uuid.New(), CustomerID: customer.ID, Kind: model.KindSale,
					Date:        time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC),
					TotalAmount: decimal.NewFromInt(1900),
					Lines: []model.SaleLine{
						{ItemName: "Tomatoes (Grade A)", Quantity: decimal.NewFromInt(20), Unit: model.UnitKg, Total: decimal.NewFromInt(400)},
					},
				},
			},
			{
				CustomerName: "Rajesh Kumar",
				Transaction: model.Transaction{
					ID: uuid.New(), CustomerID: customer.ID, Kind: model.KindPayment,
					Date:          time.Date(2026, 5, 7, 12, 0, 0, 0, time.UTC),
					PaymentAmount: &amount, TotalAmount: amount,
				},
			},
		},
		TotalSales:    decimal.NewFromInt(1900),
		TotalPayments: amount,
		FinalBalance:  decimal.NewFromInt(1400),
	}

	path, err := GenerateStatementPDF(report, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, filepath.Base(path), "statement_customer_")
}

func TestGenerateStatementPDF_CreatesStorageDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "statements")

	report := ledger.Report{
		Kind:  ledger.ReportKindBusiness,
		Title: "Business Transaction Report",
		Start: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 5, 10, 23, 59, 59, 0, time.UTC),
	}

	path, err := GenerateStatementPDF(report, dir)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
