package ledger

import (
	"testing"
	"time"

	"github.com/vineethtatipatri19/PGVMS/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crateEntry(customerID uuid.UUID, day int, issued, returned int) model.CrateLedgerEntry {
	return model.CrateLedgerEntry{
		ID:             uuid.New(),
		CustomerID:     customerID,
		Date:           time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC),
		CratesIssued:   issued,
		CratesReturned: returned,
	}
}

func TestWithRunningBalances_PerCustomerAccumulation(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	// deliberately out of date order; entries of both customers interleave
	entries := []model.CrateLedgerEntry{
		crateEntry(alice, 5, 0, 4),
		crateEntry(bob, 2, 6, 0),
		crateEntry(alice, 1, 10, 0),
		crateEntry(alice, 3, 5, 0),
	}

	balanced := WithRunningBalances(entries)
	require.Len(t, balanced, 4)

	// global order is by date; each balance tracks only its own customer
	assert.Equal(t, alice, balanced[0].CustomerID)
	assert.Equal(t, 10, balanced[0].Balance)
	assert.Equal(t, bob, balanced[1].CustomerID)
	assert.Equal(t, 6, balanced[1].Balance)
	assert.Equal(t, alice, balanced[2].CustomerID)
	assert.Equal(t, 15, balanced[2].Balance)
	assert.Equal(t, alice, balanced[3].CustomerID)
	assert.Equal(t, 11, balanced[3].Balance)
}

func TestWithRunningBalances_StableOnSameDate(t *testing.T) {
	c := uuid.New()
	entries := []model.CrateLedgerEntry{
		crateEntry(c, 1, 3, 0),
		crateEntry(c, 1, 0, 2),
	}

	balanced := WithRunningBalances(entries)
	require.Len(t, balanced, 2)
	assert.Equal(t, 3, balanced[0].Balance)
	assert.Equal(t, 1, balanced[1].Balance)
}

func TestWithRunningBalances_SkipsNegativeQuantities(t *testing.T) {
	c := uuid.New()
	entries := []model.CrateLedgerEntry{
		crateEntry(c, 1, 5, 0),
		crateEntry(c, 2, -3, 0),
		crateEntry(c, 3, 0, 2),
	}

	balanced := WithRunningBalances(entries)
	require.Len(t, balanced, 2)
	assert.Equal(t, 5, balanced[0].Balance)
	assert.Equal(t, 3, balanced[1].Balance)
}

func TestFilterForDisplay_FilterAfterBalancing(t *testing.T) {
	c := uuid.New()
	entries := []model.CrateLedgerEntry{
		crateEntry(c, 1, 10, 0),
		crateEntry(c, 2, 0, 4),
		crateEntry(c, 3, 2, 0),
	}

	balanced := WithRunningBalances(entries)
	issuedOnly := FilterForDisplay(balanced, CrateViewIssued)

	// only issue entries remain, newest first, balances untouched by filtering
	require.Len(t, issuedOnly, 2)
	assert.Equal(t, 3, issuedOnly[0].Date.Day())
	assert.Equal(t, 8, issuedOnly[0].Balance)
	assert.Equal(t, 1, issuedOnly[1].Date.Day())
	assert.Equal(t, 10, issuedOnly[1].Balance)
}

func TestFilterForDisplay_AllViewNewestFirst(t *testing.T) {
	c := uuid.New()
	balanced := WithRunningBalances([]model.CrateLedgerEntry{
		crateEntry(c, 1, 1, 0),
		crateEntry(c, 9, 1, 0),
		crateEntry(c, 4, 1, 0),
	})

	display := FilterForDisplay(balanced, CrateViewAll)
	require.Len(t, display, 3)
	assert.Equal(t, 9, display[0].Date.Day())
	assert.Equal(t, 4, display[1].Date.Day())
	assert.Equal(t, 1, display[2].Date.Day())
}

func TestSummaries_EqualFinalRunningBalance(t *testing.T) {
	alice := model.Customer{ID: uuid.New(), Name: "Alice"}
	bob := model.Customer{ID: uuid.New(), Name: "Bob"}
	entries := []model.CrateLedgerEntry{
		crateEntry(alice.ID, 1, 12, 0),
		crateEntry(bob.ID, 2, 8, 0),
		crateEntry(alice.ID, 3, 5, 0),
		crateEntry(bob.ID, 4, 0, 8),
		crateEntry(alice.ID, 5, 0, 10),
	}

	summaries := Summaries([]model.Customer{alice, bob}, entries)
	require.Len(t, summaries, 2)
	assert.Equal(t, 7, summaries[0].Balance)
	assert.Equal(t, 0, summaries[1].Balance)

	// final running balance per customer matches the summary
	balanced := WithRunningBalances(entries)
	last := map[uuid.UUID]int{}
	for _, e := range balanced {
		last[e.CustomerID] = e.Balance
	}
	assert.Equal(t, last[alice.ID], summaries[0].Balance)
	assert.Equal(t, last[bob.ID], summaries[1].Balance)
}
