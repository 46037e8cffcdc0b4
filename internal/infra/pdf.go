package infra

// pdf.go — printable statement rendering using go-pdf/fpdf.
// Renders an A4 statement with:
//   - Report title and period header
//   - Customer block (customer statements only)
//   - Transaction table, oldest first: date, customer, description, debit/credit
//   - Totals footer: total sales, total payments, final balance
//
// The output file is saved to storagePath/statement_{kind}_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/vineethtatipatri19/PGVMS/internal/ledger"
	"github.com/vineethtatipatri19/PGVMS/internal/model"
)

// GenerateStatementPDF writes a tabular statement for the report and returns
// the path of the generated file. storagePath is created if needed.
func GenerateStatementPDF(report ledger.Report, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("statement_%s_%d.pdf", report.Kind, time.Now().Unix())
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, report.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	period := fmt.Sprintf("Report Period: %s to %s",
		report.Start.Format("02/01/2006"), report.End.Format("02/01/2006"))
	pdf.CellFormat(contentW, 6, period, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	if report.Customer != nil {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, report.Customer.Name, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		if report.Customer.Address != "" {
			pdf.CellFormat(contentW, 5, report.Customer.Address, "", 1, "L", false, 0, "")
		}
		if report.Customer.ContactNumber != "" {
			pdf.CellFormat(contentW, 5, report.Customer.ContactNumber, "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Table header ──────────────────────────────────────────────────────────
	colDate := contentW * 0.13
	colName := contentW * 0.22
	colDesc := contentW * 0.41
	colAmt := contentW * 0.24

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colDate, 6, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colName, 6, "Customer", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDesc, 6, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colAmt, 6, "Amount", "B", 1, "R", false, 0, "")

	// ── Rows (already oldest first) ───────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, line := range report.Lines {
		tx := line.Transaction
		desc := describeLine(tx)
		if len(desc) > 60 {
			desc = desc[:59] + "…"
		}
		amount := "Rs " + tx.TotalAmount.StringFixed(2)
		if tx.Kind == model.KindPayment {
			amount = "-Rs " + tx.TotalAmount.StringFixed(2)
		}
		pdf.CellFormat(colDate, 5, tx.Date.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(colName, 5, line.CustomerName, "", 0, "L", false, 0, "")
		pdf.CellFormat(colDesc, 5, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(colAmt, 5, amount, "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(colDate+colName+colDesc, 6, "Total Sales:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colAmt, 6, "Rs "+report.TotalSales.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(colDate+colName+colDesc, 6, "Total Payments:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colAmt, 6, "Rs "+report.TotalPayments.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	label := "Final Balance:"
	if report.Kind == ledger.ReportKindCustomer {
		label = "Outstanding Balance:"
	}
	pdf.CellFormat(colDate+colName+colDesc, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(colAmt, 7, "Rs "+report.FinalBalance.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

func describeLine(tx model.Transaction) string {
	if tx.Kind == model.KindPayment {
		return "Payment received"
	}
	desc := ""
	for i, l := range tx.Lines {
		if i > 0 {
			desc += ", "
		}
		desc += fmt.Sprintf("%s x%s %s", l.ItemName, l.Quantity.String(), l.Unit)
	}
	if desc == "" {
		desc = "Sale"
	}
	return desc
}
