package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/model"
	"github.com/vineethtatipatri19/PGVMS/internal/repository"
)

// TransactionService owns the sales/payments ledger. A transaction is
// immutable once recorded except through Replace, which swaps the whole
// record; the sale-total invariant (total = Σ line totals, payment total =
// payment amount) is enforced here on every write.
type TransactionService interface {
	Record(ctx context.Context, req dto.RecordTransactionRequest) (*dto.TransactionResponse, error)
	List(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionListResponse, error)
	Replace(ctx context.Context, id uuid.UUID, req dto.RecordTransactionRequest) (*dto.TransactionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionService struct {
	repo          repository.TransactionRepository
	customerRepo  repository.CustomerRepository
	inventoryRepo repository.InventoryRepository
	crateRepo     repository.CrateRepository
}

func NewTransactionService(
	repo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	inventoryRepo repository.InventoryRepository,
	crateRepo repository.CrateRepository,
) TransactionService {
	return &transactionService{
		repo:          repo,
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
		crateRepo:     crateRepo,
	}
}

func (s *transactionService) Record(ctx context.Context, req dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	tx, customer, err := s.buildTransaction(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	// A sale may hand crates to the customer in the same breath; the issue
	// entry lands in the crate ledger dated with the sale.
	if tx.Kind == model.KindSale && req.CratesIssued > 0 {
		entry := &model.CrateLedgerEntry{
			CustomerID:   tx.CustomerID,
			Date:         tx.Date,
			CratesIssued: req.CratesIssued,
		}
		if err := s.crateRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("sale recorded but crate entry failed: %w", err)
		}
	}

	resp := transactionToResponse(*tx, customer.Name)
	return &resp, nil
}

// List filters the ledger for the on-screen list: optional kind view,
// customer, and case-insensitive item substring (which excludes payments
// entirely), newest first.
func (s *transactionService) List(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionListResponse, error) {
	txs, err := s.repo.List(ctx)
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

	var customerID *uuid.UUID
	if filter.CustomerID != "" {
		id, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			return nil, errors.New("invalid customer_id")
		}
		customerID = &id
	}
	needle := strings.ToLower(filter.Item)

	kept := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		switch filter.View {
		case "sales":
			if tx.Kind != model.KindSale {
				continue
			}
		case "payments":
			if tx.Kind != model.KindPayment {
				continue
			}
		}
		if customerID != nil && tx.CustomerID != *customerID {
			continue
		}
		if needle != "" && !lineMatches(tx, needle) {
			continue
		}
		kept = append(kept, tx)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.After(kept[j].Date)
	})

	items := make([]dto.TransactionResponse, 0, len(kept))
	for _, tx := range kept {
		name := names[tx.CustomerID]
		if name == "" {
			name = "Unknown Customer"
		}
		items = append(items, transactionToResponse(tx, name))
	}
	return &dto.TransactionListResponse{Data: items, Total: len(items)}, nil
}

func (s *transactionService) Replace(ctx context.Context, id uuid.UUID, req dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("transaction not found")
	}
	tx, customer, err := s.buildTransaction(ctx, req)
	if err != nil {
		return nil, err
	}
	tx.ID = existing.ID
	tx.CreatedAt = existing.CreatedAt
	for i := range tx.Lines {
		tx.Lines[i].TransactionID = tx.ID
	}
	if err := s.repo.Replace(ctx, tx); err != nil {
		return nil, err
	}
	resp := transactionToResponse(*tx, customer.Name)
	return &resp, nil
}

func (s *transactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("transaction not found")
	}
	return s.repo.Delete(ctx, id)
}

// buildTransaction validates the request and assembles the model. Sales take
// the union's Lines branch, payments the PaymentAmount branch; the unused
// branch stays empty. Validation failures abort before any write.
func (s *transactionService) buildTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*model.Transaction, *model.Customer, error) {
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

	tx := &model.Transaction{
		CustomerID: customerID,
		Date:       date,
		Kind:       req.Kind,
	}

	switch req.Kind {
	case model.KindSale:
		if len(req.Lines) == 0 {
			return nil, nil, errors.New("a sale needs at least one line")
		}
		total := decimal.Zero
		for i, lr := range req.Lines {
			lotID, err := uuid.Parse(lr.InventoryLotID)
			if err != nil {
				return nil, nil, errors.New("invalid inventory_lot_id")
			}
			lot, err := s.inventoryRepo.FindByID(ctx, lotID)
			if err != nil {
				return nil, nil, fmt.Errorf("inventory lot %s not found", lr.InventoryLotID)
			}
			if !lr.Quantity.IsPositive() || !lr.PricePerUnit.IsPositive() {
				return nil, nil, errors.New("sale line needs a positive quantity and price")
			}
			lineTotal := lr.Quantity.Mul(lr.PricePerUnit)
			tx.Lines = append(tx.Lines, model.SaleLine{
				InventoryLotID: lotID,
				ItemName:       fmt.Sprintf("%s (%s)", lot.Name, lot.Variant),
				Quantity:       lr.Quantity,
				Unit:           lr.Unit,
				PricePerUnit:   lr.PricePerUnit,
				Total:          lineTotal,
				Position:       i,
			})
			total = total.Add(lineTotal)
		}
		tx.TotalAmount = total

	case model.KindPayment:
		if req.PaymentAmount == nil || !req.PaymentAmount.IsPositive() {
			return nil, nil, errors.New("a payment needs a positive amount")
		}
		amount := *req.PaymentAmount
		tx.PaymentAmount = &amount
		tx.TotalAmount = amount

	default:
		return nil, nil, errors.New("unknown transaction kind")
	}

	return tx, customer, nil
}

func lineMatches(tx model.Transaction, needle string) bool {
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

func transactionToResponse(tx model.Transaction, customerName string) dto.TransactionResponse {
	lines := make([]dto.SaleLineResponse, 0, len(tx.Lines))
	for _, l := range tx.Lines {
		lines = append(lines, dto.SaleLineResponse{
			InventoryLotID: l.InventoryLotID.String(),
			ItemName:       l.ItemName,
			Quantity:       l.Quantity,
			Unit:           l.Unit,
			PricePerUnit:   l.PricePerUnit,
			Total:          l.Total,
		})
	}
	return dto.TransactionResponse{
		ID:            tx.ID.String(),
		CustomerID:    tx.CustomerID.String(),
		CustomerName:  customerName,
		Date:          tx.Date.Format(dayLayout),
		Kind:          tx.Kind,
		Lines:         lines,
		PaymentAmount: tx.PaymentAmount,
		TotalAmount:   tx.TotalAmount,
	}
}
