package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/ledger"
	"github.com/vineethtatipatri19/PGVMS/internal/model"
	"github.com/vineethtatipatri19/PGVMS/internal/repository"
	"github.com/vineethtatipatri19/PGVMS/internal/worker"
)

// ReportService builds date-range statements over the transaction ledger and
// queues printable PDF renditions. Reports are derived fresh per request;
// customer names are snapshotted into the lines at generation time so later
// customer edits never rewrite an already produced statement.
type ReportService interface {
	BusinessReport(ctx context.Context, query dto.ReportQuery) (*dto.ReportResponse, error)
	CustomerStatement(ctx context.Context, customerID uuid.UUID, query dto.ReportQuery) (*dto.ReportResponse, error)
	QueueStatement(ctx context.Context, customerID *uuid.UUID, req dto.StatementRequest) (*dto.StatementQueuedResponse, error)
}

type reportService struct {
	txRepo       repository.TransactionRepository
	customerRepo repository.CustomerRepository
	dispatcher   *worker.Dispatcher
}

func NewReportService(
	txRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	dispatcher *worker.Dispatcher,
) ReportService {
	return &reportService{txRepo: txRepo, customerRepo: customerRepo, dispatcher: dispatcher}
}

func (s *reportService) BusinessReport(ctx context.Context, query dto.ReportQuery) (*dto.ReportResponse, error) {
	return s.build(ctx, nil, query)
}

func (s *reportService) CustomerStatement(ctx context.Context, customerID uuid.UUID, query dto.ReportQuery) (*dto.ReportResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, errors.New("customer not found")
	}
	return s.build(ctx, &customerID, query)
}

func (s *reportService) build(ctx context.Context, customerID *uuid.UUID, query dto.ReportQuery) (*dto.ReportResponse, error) {
	rng, err := parseRange(query.Start, query.End)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	report := ledger.BuildReport(txs, customers, rng, ledger.ReportFilter{
		CustomerID: customerID,
		ItemName:   query.Item,
	})
	resp := reportToResponse(report)
	return &resp, nil
}

// QueueStatement enqueues PDF rendering (and optional emailing) of a
// statement. Fire-and-forget: the caller gets an ack, the worker pool does
// the rest.
func (s *reportService) QueueStatement(ctx context.Context, customerID *uuid.UUID, req dto.StatementRequest) (*dto.StatementQueuedResponse, error) {
	if _, err := parseRange(req.Start, req.End); err != nil {
		return nil, err
	}
	job := worker.StatementJob{Start: req.Start, End: req.End, Email: req.Email}
	if customerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *customerID); err != nil {
			return nil, errors.New("customer not found")
		}
		id := customerID.String()
		job.CustomerID = &id
	}
	if err := s.dispatcher.EnqueueStatement(ctx, job); err != nil {
		log.Error().Err(err).Msg("failed to enqueue statement job")
		return nil, errors.New("could not queue statement")
	}
	return &dto.StatementQueuedResponse{Queued: true, Detail: "statement queued for rendering"}, nil
}

func parseRange(start, end string) (ledger.DateRange, error) {
	s, err := parseDay(start)
	if err != nil {
		return ledger.DateRange{}, errors.New("invalid start date")
	}
	e, err := parseDay(end)
	if err != nil {
		return ledger.DateRange{}, errors.New("invalid end date")
	}
	if e.Before(s) {
		return ledger.DateRange{}, errors.New("end date before start date")
	}
	return ledger.NewDateRange(s, e), nil
}

func reportToResponse(report ledger.Report) dto.ReportResponse {
	lines := make([]dto.ReportLineResponse, 0, len(report.Lines))
	for _, l := range report.Lines {
		lines = append(lines, dto.ReportLineResponse{
			TransactionID: l.Transaction.ID.String(),
			CustomerName:  l.CustomerName,
			Date:          l.Transaction.Date.Format(dayLayout),
			Kind:          l.Transaction.Kind,
			Description:   describeTransaction(l.Transaction),
			Amount:        l.Transaction.TotalAmount,
		})
	}
	resp := dto.ReportResponse{
		Kind:          string(report.Kind),
		Title:         report.Title,
		Start:         report.Start.Format(dayLayout),
		End:           report.End.Format(dayLayout),
		Lines:         lines,
		TotalSales:    report.TotalSales,
		TotalPayments: report.TotalPayments,
		FinalBalance:  report.FinalBalance,
	}
	if report.Customer != nil {
		resp.CustomerName = report.Customer.Name
	}
	return resp
}

// describeTransaction renders the statement's line description: the sale's
// item breakdown, or a plain payment label.
func describeTransaction(tx model.Transaction) string {
	if tx.Kind == model.KindPayment {
		return "Payment received"
	}
	parts := make([]string, 0, len(tx.Lines))
	for _, l := range tx.Lines {
		parts = append(parts, fmt.Sprintf("%s %s %s", l.ItemName, l.Quantity.String(), l.Unit))
	}
	return strings.Join(parts, ", ")
}
