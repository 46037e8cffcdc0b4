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

// CustomerService owns customer CRUD. Every read derives the outstanding
// balance from the full transaction stream — the balance is never stored.
type CustomerService interface {
	Create(ctx context.Context, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo   repository.CustomerRepository
	txRepo repository.TransactionRepository
}

func NewCustomerService(repo repository.CustomerRepository, txRepo repository.TransactionRepository) CustomerService {
	return &customerService{repo: repo, txRepo: txRepo}
}

func (s *customerService) Create(ctx context.Context, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	c := customerFromRequest(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	// A fresh customer has no transactions, so the derived balance is zero.
	resp := customerToResponse(ledger.CustomerWithBalance{Customer: *c})
	return &resp, nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	withBalances := ledger.WithBalances(customers, txs)
	out := make([]dto.CustomerResponse, 0, len(withBalances))
	for _, cb := range withBalances {
		out = append(out, customerToResponse(cb))
	}
	return out, nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	balances := ledger.Balances([]model.Customer{*c}, txs)
	resp := customerToResponse(ledger.CustomerWithBalance{Customer: *c, OutstandingBalance: balances[c.ID]})
	return &resp, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	replacement := customerFromRequest(req)
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, replacement); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("customer not found")
	}
	return s.repo.Delete(ctx, id)
}

func customerFromRequest(req dto.SaveCustomerRequest) *model.Customer {
	return &model.Customer{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		PhotoURL:      req.PhotoURL,
		KYCVerified:   req.KYCVerified,
	}
}

func customerToResponse(cb ledger.CustomerWithBalance) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:                 cb.ID.String(),
		Name:               cb.Name,
		Address:            cb.Address,
		ContactNumber:      cb.ContactNumber,
		PhotoURL:           cb.PhotoURL,
		KYCVerified:        cb.KYCVerified,
		OutstandingBalance: cb.OutstandingBalance,
	}
}
