package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/ledger"
	"github.com/vineethtatipatri19/PGVMS/internal/model"
	"github.com/vineethtatipatri19/PGVMS/internal/repository"
)

// CrateService owns the returnable-crate ledger. Running balances are derived
// on every read; view filtering and the newest-first display sort happen only
// after the balances are computed.
type CrateService interface {
	Record(ctx context.Context, req dto.SaveCrateEntryRequest) (*dto.CrateEntryResponse, error)
	Ledger(ctx context.Context, view ledger.CrateView) (*dto.CrateLedgerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveCrateEntryRequest) (*dto.CrateEntryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type crateService struct {
	repo         repository.CrateRepository
	customerRepo repository.CustomerRepository
}

func NewCrateService(repo repository.CrateRepository, customerRepo repository.CustomerRepository) CrateService {
	return &crateService{repo: repo, customerRepo: customerRepo}
}

func (s *crateService) Record(ctx context.Context, req dto.SaveCrateEntryRequest) (*dto.CrateEntryResponse, error) {
	entry, customer, err := s.buildEntry(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return s.annotated(ctx, entry.ID, customer.Name)
}

func (s *crateService) Ledger(ctx context.Context, view ledger.CrateView) (*dto.CrateLedgerResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	balanced := ledger.WithRunningBalances(entries)
	display := ledger.FilterForDisplay(balanced, view)

	out := make([]dto.CrateEntryResponse, 0, len(display))
	for _, e := range display {
		out = append(out, crateEntryToResponse(e, nameOrUnknown(names, e.CustomerID)))
	}

	summaries := make([]dto.CrateSummaryResponse, 0, len(customers))
	for _, sum := range ledger.Summaries(customers, entries) {
		summaries = append(summaries, dto.CrateSummaryResponse{
			CustomerID:   sum.Customer.ID.String(),
			CustomerName: sum.Customer.Name,
			Balance:      sum.Balance,
		})
	}

	return &dto.CrateLedgerResponse{View: string(view), Entries: out, Summaries: summaries}, nil
}

func (s *crateService) Update(ctx context.Context, id uuid.UUID, req dto.SaveCrateEntryRequest) (*dto.CrateEntryResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("crate entry not found")
	}
	entry, customer, err := s.buildEntry(ctx, req)
	if err != nil {
		return nil, err
	}
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return s.annotated(ctx, entry.ID, customer.Name)
}

func (s *crateService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("crate entry not found")
	}
	return s.repo.Delete(ctx, id)
}

func (s *crateService) buildEntry(ctx context.Context, req dto.SaveCrateEntryRequest) (*model.CrateLedgerEntry, *model.Customer, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, nil, errors.New("invalid customer_id")
	}
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, nil, errors.New("customer not found")
	}
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, nil, errors.New("invalid date")
	}
	entry := &model.CrateLedgerEntry{CustomerID: customerID, Date: date}
	if req.Type == "issue" {
		entry.CratesIssued = req.Quantity
	} else {
		entry.CratesReturned = req.Quantity
	}
	return entry, customer, nil
}

// annotated re-derives the running balances and plucks the entry back out so
// the response carries the balance as of that entry.
func (s *crateService) annotated(ctx context.Context, id uuid.UUID, customerName string) (*dto.CrateEntryResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range ledger.WithRunningBalances(entries) {
		if e.ID == id {
			resp := crateEntryToResponse(e, customerName)
			return &resp, nil
		}
	}
	return nil, errors.New("crate entry not found")
}

func nameOrUnknown(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown Customer"
}

func crateEntryToResponse(e ledger.BalancedCrateEntry, customerName string) dto.CrateEntryResponse {
	return dto.CrateEntryResponse{
		ID:             e.ID.String(),
		CustomerID:     e.CustomerID.String(),
		CustomerName:   customerName,
		Date:           e.Date.Format(dayLayout),
		CratesIssued:   e.CratesIssued,
		CratesReturned: e.CratesReturned,
		Balance:        e.Balance,
	}
}
