package ledger

import (
	"sort"

	"github.com/google/uuid"

	"github.com/vineethtatipatri19/PGVMS/internal/model"
)

// CrateView selects which entries the crate ledger screen shows. Filtering
// happens strictly AFTER running balances are computed.
type CrateView string

const (
	CrateViewAll      CrateView = "all"
	CrateViewIssued   CrateView = "issued"
	CrateViewReturned CrateView = "returned"
)

// BalancedCrateEntry is a ledger entry annotated with the customer's running
// crate balance as of that entry.
type BalancedCrateEntry struct {
	model.CrateLedgerEntry
	Balance int `json:"balance"`
}

// WithRunningBalances establishes the global chronological issuance order
// (stable sort by date ascending, ties keep original relative order) and
// accumulates a running total PER CUSTOMER across it: each entry's balance is
// that customer's previous balance plus issued minus returned. The global
// date sort interleaved with the per-customer accumulator is deliberate — it
// matches the observed ledger behavior, and an entry's balance depends on the
// same customer's earlier entries wherever they sit in the global order.
// Entries with a negative quantity are malformed and skipped.
func WithRunningBalances(entries []model.CrateLedgerEntry) []BalancedCrateEntry {
	ordered := make([]model.CrateLedgerEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	running := make(map[uuid.UUID]int)
	out := make([]BalancedCrateEntry, 0, len(ordered))
	for _, e := range ordered {
		if e.CratesIssued < 0 || e.CratesReturned < 0 {
			continue
		}
		running[e.CustomerID] += e.CratesIssued - e.CratesReturned
		out = append(out, BalancedCrateEntry{CrateLedgerEntry: e, Balance: running[e.CustomerID]})
	}
	return out
}

// FilterForDisplay applies the view filter and re-sorts newest first for the
// on-screen ledger. Must only be called on already-balanced entries: filtering
// or re-sorting before WithRunningBalances would corrupt the running totals.
func FilterForDisplay(entries []BalancedCrateEntry, view CrateView) []BalancedCrateEntry {
	filtered := make([]BalancedCrateEntry, 0, len(entries))
	for _, e := range entries {
		switch view {
		case CrateViewIssued:
			if e.CratesIssued <= 0 {
				continue
			}
		case CrateViewReturned:
			if e.CratesReturned <= 0 {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered
}

// CrateSummary is a customer's total outstanding crates.
type CrateSummary struct {
	Customer model.Customer `json:"customer"`
	Balance  int            `json:"balance"`
}

// Summaries computes Σ issued − Σ returned per customer, one row per known
// customer in their given order. Equivalent to each customer's final running
// balance.
func Summaries(customers []model.Customer, entries []model.CrateLedgerEntry) []CrateSummary {
	totals := make(map[uuid.UUID]int, len(customers))
	for _, e := range entries {
		if e.CratesIssued < 0 || e.CratesReturned < 0 {
			continue
		}
		totals[e.CustomerID] += e.CratesIssued - e.CratesReturned
	}
	out := make([]CrateSummary, 0, len(customers))
	for _, c := range customers {
		out = append(out, CrateSummary{Customer: c, Balance: totals[c.ID]})
	}
	return out
}
