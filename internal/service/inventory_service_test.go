package service

import (
	"context"
	"testing"
	"time"

	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildInventorySvc pins "now" so freshness classification is deterministic.
func buildInventorySvc(now time.Time) (InventoryService, *stubInventoryRepo) {
	repo := newStubInventoryRepo()
	svc := &inventoryService{repo: repo, now: func() time.Time { return now }}
	return svc, repo
}

func TestInventoryCreate_ParsesDates(t *testing.T) {
	now := time.Date(2026, 5, 10, 10, 0, 0, 0, time.Local)
	svc, repo := buildInventorySvc(now)

	resp, err := svc.Create(context.Background(), dto.SaveLotRequest{
		Name:         "Tomatoes",
		Variant:      "Grade A",
		LotNumber:    "LOT-1",
		Quantity:     decimal.NewFromInt(250),
		Unit:         model.UnitKg,
		PurchaseDate: "2026-05-08",
		ExpiryDate:   "2026-05-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-12", resp.ExpiryDate)
	assert.Equal(t, "expiring_soon", resp.Status)
	assert.Equal(t, 2, resp.DaysLeft)

	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 1, count)
}

func TestInventoryCreate_BadDateRejected(t *testing.T) {
	svc, repo := buildInventorySvc(time.Now())

	_, err := svc.Create(context.Background(), dto.SaveLotRequest{
		Name: "Tomatoes", LotNumber: "LOT-1", Quantity: decimal.NewFromInt(1),
		Unit: model.UnitKg, PurchaseDate: "08/05/2026", ExpiryDate: "2026-05-12",
	})
	assert.ErrorContains(t, err, "invalid purchase_date")

	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 0, count)
}

func TestInventoryList_FEFORanked(t *testing.T) {
	now := time.Date(2026, 5, 10, 10, 0, 0, 0, time.Local)
	svc, repo := buildInventorySvc(now)

	addLot := func(name string, daysOut int) {
		_ = repo.Create(context.Background(), &model.InventoryLot{
			ID:         uuid.New(),
			Name:       name,
			Quantity:   decimal.NewFromInt(10),
			Unit:       model.UnitKg,
			ExpiryDate: now.AddDate(0, 0, daysOut),
		})
	}
	addLot("expired", -1)
	addLot("soonest", 2)
	addLot("fresh", 6)
	addLot("mid", 4)

	lots, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lots, 4)

	assert.Equal(t, "expired", lots[0].Name)
	assert.Equal(t, "expired", lots[0].Status)
	assert.False(t, lots[0].SellFirst)

	assert.Equal(t, "soonest", lots[1].Name)
	assert.Equal(t, "expiring_soon", lots[1].Status)

	assert.Equal(t, "mid", lots[2].Name)
	assert.Equal(t, "fresh", lots[2].Status)

	assert.Equal(t, "fresh", lots[3].Name)

	// nobody is sell-first while an expired lot tops the order
	for _, l := range lots {
		assert.False(t, l.SellFirst, l.Name)
	}
}

func TestInventoryList_SellFirstOnNonExpiredTop(t *testing.T) {
	now := time.Date(2026, 5, 10, 10, 0, 0, 0, time.Local)
	svc, repo := buildInventorySvc(now)

	_ = repo.Create(context.Background(), &model.InventoryLot{
		ID: uuid.New(), Name: "soon", Quantity: decimal.NewFromInt(1), Unit: model.UnitKg,
		ExpiryDate: now.AddDate(0, 0, 2),
	})
	_ = repo.Create(context.Background(), &model.InventoryLot{
		ID: uuid.New(), Name: "later", Quantity: decimal.NewFromInt(1), Unit: model.UnitKg,
		ExpiryDate: now.AddDate(0, 0, 9),
	})

	lots, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lots, 2)
	assert.True(t, lots[0].SellFirst)
	assert.False(t, lots[1].SellFirst)
}

func TestInventoryUpdate_ReplacesLot(t *testing.T) {
	now := time.Date(2026, 5, 10, 10, 0, 0, 0, time.Local)
	svc, repo := buildInventorySvc(now)

	lot := &model.InventoryLot{
		ID: uuid.New(), Name: "Tomatoes", Quantity: decimal.NewFromInt(100), Unit: model.UnitKg,
		ExpiryDate: now.AddDate(0, 0, 5),
	}
	_ = repo.Create(context.Background(), lot)

	resp, err := svc.Update(context.Background(), lot.ID, dto.SaveLotRequest{
		Name: "Tomatoes", Variant: "Grade B", LotNumber: "LOT-9",
		Quantity: decimal.NewFromInt(75), Unit: model.UnitKg,
		PurchaseDate: "2026-05-01", ExpiryDate: "2026-05-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "Grade B", resp.Variant)
	assert.Equal(t, "75", resp.Quantity.String())

	stored, _ := repo.FindByID(context.Background(), lot.ID)
	assert.Equal(t, "LOT-9", stored.LotNumber)
}

func TestInventoryDelete_Missing(t *testing.T) {
	svc, _ := buildInventorySvc(time.Now())
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "not found")
}
