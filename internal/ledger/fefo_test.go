package ledger

import (
	"testing"
	"time"

	"github.com/vineethtatipatri19/PGVMS/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lotExpiring(name string, expiry time.Time) model.InventoryLot {
	return model.InventoryLot{Name: name, ExpiryDate: expiry}
}

func TestDaysLeft_RoundsUp(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// 36 hours ahead → ceil(1.5) = 2 days
	assert.Equal(t, 2, DaysLeft(now.Add(36*time.Hour), now))
	// 1 hour ahead still counts as a day
	assert.Equal(t, 1, DaysLeft(now.Add(time.Hour), now))
	// 1 hour past → ceil(-0.04) = 0, not yet negative
	assert.Equal(t, 0, DaysLeft(now.Add(-time.Hour), now))
	// a full day past → negative
	assert.Equal(t, -1, DaysLeft(now.Add(-25*time.Hour), now))
}

func TestClassify_Boundaries(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// exactly 3 days out is still expiring soon
	assert.Equal(t, StatusExpiringSoon, Classify(now.Add(3*24*time.Hour), now))
	// just over 3 days rounds up to 4 → fresh
	assert.Equal(t, StatusFresh, Classify(now.Add(3*24*time.Hour+time.Minute), now))
	// same instant counts as 0 days left → expiring soon, not expired
	assert.Equal(t, StatusExpiringSoon, Classify(now, now))
	// more than a day past → expired
	assert.Equal(t, StatusExpired, Classify(now.Add(-25*time.Hour), now))
}

func TestRankForFEFO_OrderAndSellFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lots := []model.InventoryLot{
		lotExpiring("fresh", now.Add(6*24*time.Hour)),
		lotExpiring("soon", now.Add(2*24*time.Hour)),
		lotExpiring("expired", now.Add(-1*24*time.Hour-time.Hour)),
		lotExpiring("mid", now.Add(4*24*time.Hour)),
	}

	ranked := RankForFEFO(lots, now)
	require.Len(t, ranked, 4)

	assert.Equal(t, "expired", ranked[0].Lot.Name)
	assert.Equal(t, "soon", ranked[1].Lot.Name)
	assert.Equal(t, "mid", ranked[2].Lot.Name)
	assert.Equal(t, "fresh", ranked[3].Lot.Name)

	// the top slot is expired, so nothing is flagged sell-first
	for _, r := range ranked {
		assert.False(t, r.SellFirst, r.Lot.Name)
	}
}

func TestRankForFEFO_SellFirstSkipsExpiredTop(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lots := []model.InventoryLot{
		lotExpiring("later", now.Add(6*24*time.Hour)),
		lotExpiring("first", now.Add(2*24*time.Hour)),
	}

	ranked := RankForFEFO(lots, now)
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Lot.Name)
	assert.True(t, ranked[0].SellFirst)
	assert.False(t, ranked[1].SellFirst)
}

func TestRankForFEFO_StableOnTies(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sameDay := now.Add(5 * 24 * time.Hour)
	lots := []model.InventoryLot{
		lotExpiring("a", sameDay),
		lotExpiring("b", sameDay),
		lotExpiring("c", sameDay),
	}

	ranked := RankForFEFO(lots, now)
	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].Lot.Name)
	assert.Equal(t, "b", ranked[1].Lot.Name)
	assert.Equal(t, "c", ranked[2].Lot.Name)
}

func TestRankForFEFO_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lots := []model.InventoryLot{
		lotExpiring("z", now.Add(9*24*time.Hour)),
		lotExpiring("a", now.Add(1*24*time.Hour)),
	}

	RankForFEFO(lots, now)
	assert.Equal(t, "z", lots[0].Name)
	assert.Equal(t, "a", lots[1].Name)
}
