package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vineethtatipatri19/PGVMS/internal/infra"
	"github.com/vineethtatipatri19/PGVMS/internal/ledger"
	"github.com/vineethtatipatri19/PGVMS/internal/repository"
)

// StatementWorker renders statement PDFs off the request path. It rebuilds
// the report from fresh repository snapshots at processing time, writes the
// PDF, and optionally mails it.
type StatementWorker struct {
	txRepo       repository.TransactionRepository
	customerRepo repository.CustomerRepository
	mailer       *infra.Mailer
	storagePath  string
}

func NewStatementWorker(
	txRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	mailer *infra.Mailer,
	storagePath string,
) *StatementWorker {
	return &StatementWorker{
		txRepo:       txRepo,
		customerRepo: customerRepo,
		mailer:       mailer,
		storagePath:  storagePath,
	}
}

func (w *StatementWorker) Handle(ctx context.Context, job StatementJob) error {
	start, err := time.ParseInLocation("2006-01-02", job.Start, time.Local)
	if err != nil {
		return fmt.Errorf("statement: bad start date %q: %w", job.Start, err)
	}
	end, err := time.ParseInLocation("2006-01-02", job.End, time.Local)
	if err != nil {
		return fmt.Errorf("statement: bad end date %q: %w", job.End, err)
	}

	filter := ledger.ReportFilter{}
	if job.CustomerID != nil {
		id, err := uuid.Parse(*job.CustomerID)
		if err != nil {
			return fmt.Errorf("statement: bad customer id %q: %w", *job.CustomerID, err)
		}
		filter.CustomerID = &id
	}

	txs, err := w.txRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("statement: load transactions: %w", err)
	}
	customers, err := w.customerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("statement: load customers: %w", err)
	}

	report := ledger.BuildReport(txs, customers, ledger.NewDateRange(start, end), filter)

	pdfPath, err := infra.GenerateStatementPDF(report, w.storagePath)
	if err != nil {
		return fmt.Errorf("statement: render PDF: %w", err)
	}

	log.Info().
		Str("kind", string(report.Kind)).
		Str("path", pdfPath).
		Int("lines", len(report.Lines)).
		Msg("statement PDF rendered")

	if job.Email != "" {
		subject := fmt.Sprintf("%s %s to %s", report.Title, job.Start, job.End)
		body := fmt.Sprintf("Please find attached the %s for the period %s to %s.",
			report.Title, job.Start, job.End)
		if err := w.mailer.SendStatement(job.Email, subject, body, pdfPath); err != nil {
			return fmt.Errorf("statement: send email: %w", err)
		}
		log.Info().Str("to", job.Email).Msg("statement emailed")
	}
	return nil
}
