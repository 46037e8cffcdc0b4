// Package ledger holds the derived-state computations of the vendor book:
// FEFO inventory ranking, customer outstanding balances, the crate running
// balance, and statement/report aggregation. Every function is a pure
// computation over a snapshot slice — nothing in here mutates its input or
// caches a result between calls, so callers always see the latest collection
// state.
package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/vineethtatipatri19/PGVMS/internal/model"
)

// LotStatus classifies an inventory lot relative to its expiry date.
type LotStatus int

const (
	StatusFresh LotStatus = iota
	StatusExpiringSoon
	StatusExpired
)

func (s LotStatus) String() string {
	switch s {
	case StatusExpired:
		return "expired"
	case StatusExpiringSoon:
		return "expiring_soon"
	default:
		return "fresh"
	}
}

// ExpiringSoonDays is the classification window: a lot expiring within this
// many days (but not already past) is flagged for priority sale.
const ExpiringSoonDays = 3

// DaysLeft returns the number of whole days until expiry, rounded up.
// Negative when the expiry instant is in the past.
func DaysLeft(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// Classify applies the expiry rules in order, first match wins:
// past expiry → Expired, within ExpiringSoonDays → ExpiringSoon, else Fresh.
func Classify(expiry, now time.Time) LotStatus {
	days := DaysLeft(expiry, now)
	if days < 0 {
		return StatusExpired
	}
	if days <= ExpiringSoonDays {
		return StatusExpiringSoon
	}
	return StatusFresh
}

// RankedLot is an inventory lot annotated with its FEFO rank data.
type RankedLot struct {
	Lot       model.InventoryLot
	Status    LotStatus
	DaysLeft  int
	SellFirst bool
}

// RankForFEFO orders lots First-Expiry-First-Out: stable ascending sort by
// expiry instant, ties keeping original insertion order. The rank-0 lot is
// flagged SellFirst only when it is not expired — an expired lot is never
// promoted for sale even though it sorts to the top.
func RankForFEFO(lots []model.InventoryLot, now time.Time) []RankedLot {
	sorted := make([]model.InventoryLot, len(lots))
	copy(sorted, lots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpiryDate.Before(sorted[j].ExpiryDate)
	})

	ranked := make([]RankedLot, 0, len(sorted))
	for i, lot := range sorted {
		status := Classify(lot.ExpiryDate, now)
		ranked = append(ranked, RankedLot{
			Lot:       lot,
			Status:    status,
			DaysLeft:  DaysLeft(lot.ExpiryDate, now),
			SellFirst: i == 0 && status != StatusExpired,
		})
	}
	return ranked
}
