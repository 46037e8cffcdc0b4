package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/ledger"
	"github.com/vineethtatipatri19/PGVMS/internal/model"
	"github.com/vineethtatipatri19/PGVMS/internal/repository"
)

// InventoryService manages lots and serves them FEFO-ranked. The ranking is
// recomputed on every List call from a fresh snapshot — never cached.
type InventoryService interface {
	Create(ctx context.Context, req dto.SaveLotRequest) (*dto.LotResponse, error)
	List(ctx context.Context) ([]dto.LotResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveLotRequest) (*dto.LotResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inventoryService struct {
	repo repository.InventoryRepository
	now  func() time.Time
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo, now: time.Now}
}

const dayLayout = "2006-01-02"

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.Local)
}

func (s *inventoryService) Create(ctx context.Context, req dto.SaveLotRequest) (*dto.LotResponse, error) {
	lot, err := lotFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, lot); err != nil {
		return nil, err
	}
	return s.toResponse(*lot), nil
}

func (s *inventoryService) List(ctx context.Context) ([]dto.LotResponse, error) {
	lots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ranked := ledger.RankForFEFO(lots, s.now())
	out := make([]dto.LotResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.LotResponse{
			ID:           r.Lot.ID.String(),
			Name:         r.Lot.Name,
			Variant:      r.Lot.Variant,
			LotNumber:    r.Lot.LotNumber,
			Quantity:     r.Lot.Quantity,
			Unit:         r.Lot.Unit,
			PurchaseDate: r.Lot.PurchaseDate.Format(dayLayout),
			ExpiryDate:   r.Lot.ExpiryDate.Format(dayLayout),
			Status:       r.Status.String(),
			DaysLeft:     r.DaysLeft,
			SellFirst:    r.SellFirst,
		})
	}
	return out, nil
}

func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, req dto.SaveLotRequest) (*dto.LotResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("inventory lot not found")
	}
	replacement, err := lotFromRequest(req)
	if err != nil {
		return nil, err
	}
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, replacement); err != nil {
		return nil, err
	}
	return s.toResponse(*replacement), nil
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("inventory lot not found")
	}
	return s.repo.Delete(ctx, id)
}

func (s *inventoryService) toResponse(lot model.InventoryLot) *dto.LotResponse {
	status := ledger.Classify(lot.ExpiryDate, s.now())
	return &dto.LotResponse{
		ID:           lot.ID.String(),
		Name:         lot.Name,
		Variant:      lot.Variant,
		LotNumber:    lot.LotNumber,
		Quantity:     lot.Quantity,
		Unit:         lot.Unit,
		PurchaseDate: lot.PurchaseDate.Format(dayLayout),
		ExpiryDate:   lot.ExpiryDate.Format(dayLayout),
		Status:       status.String(),
		DaysLeft:     ledger.DaysLeft(lot.ExpiryDate, s.now()),
	}
}

func lotFromRequest(req dto.SaveLotRequest) (*model.InventoryLot, error) {
	purchase, err := parseDay(req.PurchaseDate)
	if err != nil {
		return nil, errors.New("invalid purchase_date")
	}
	expiry, err := parseDay(req.ExpiryDate)
	if err != nil {
		return nil, errors.New("invalid expiry_date")
	}
	return &model.InventoryLot{
		Name:         req.Name,
		Variant:      req.Variant,
		LotNumber:    req.LotNumber,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PurchaseDate: purchase,
		ExpiryDate:   expiry,
	}, nil
}
