package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templetrust/sevaledger/models"
)

func TestComputeAggregates(t *testing.T) {
	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)

	donations := []models.Donation{
		{PaymentID: "pay_a", Amount: 25000, Date: jan},
		{PaymentID: "pay_b", Amount: 10000, Date: jan.AddDate(0, 0, 5)},
		{PaymentID: "pay_c", Amount: 5000, Date: feb},
	}
	expenses := []models.Expense{
		{Purpose: "prasad", Amount: 12000, Date: feb},
	}

	agg := ComputeAggregates(donations, expenses)
	assert.Equal(t, int64(40000), agg.TotalCollected)
	assert.Equal(t, int64(12000), agg.TotalSpent)
	assert.Equal(t, agg.TotalCollected-agg.TotalSpent, agg.Balance)
	assert.Equal(t, int64(35000), agg.Monthly["2026-01"])
	assert.Equal(t, int64(5000), agg.Monthly["2026-02"])

	// monthly buckets always sum back to the total
	var monthlySum int64
	for _, v := range agg.Monthly {
		monthlySum += v
	}
	assert.Equal(t, agg.TotalCollected, monthlySum)
}

func TestComputeAggregatesEmpty(t *testing.T) {
	agg := ComputeAggregates(nil, nil)
	assert.Zero(t, agg.TotalCollected)
	assert.Zero(t, agg.TotalSpent)
	assert.Zero(t, agg.Balance)
	assert.Empty(t, agg.Monthly)
}

func TestReadModelLiveOrdering(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	broker := NewBroker()
	defer broker.Close()

	rm, err := NewReadModel(context.Background(), store, broker)
	require.NoError(t, err)
	defer rm.Close()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	// interleaved inserts with out-of-order timestamps
	for _, d := range []models.Donation{
		{PaymentID: "pay_mid", Amount: 2000, Date: base.AddDate(0, 0, 5)},
		{PaymentID: "pay_old", Amount: 1000, Date: base},
		{PaymentID: "pay_new", Amount: 3000, Date: base.AddDate(0, 0, 10)},
	} {
		donation := d
		broker.Publish(Change{Collection: CollectionDonations, Donation: &donation})
	}

	require.Eventually(t, func() bool {
		return len(rm.Donations()) == 3
	}, time.Second, 10*time.Millisecond)

	donations := rm.Donations()
	assert.Equal(t, "pay_new", donations[0].PaymentID)
	assert.Equal(t, "pay_mid", donations[1].PaymentID)
	assert.Equal(t, "pay_old", donations[2].PaymentID)

	agg := rm.Aggregates()
	assert.Equal(t, int64(6000), agg.TotalCollected)
	assert.Equal(t, agg.TotalCollected-agg.TotalSpent, agg.Balance)
}

func TestReadModelMergesByPaymentID(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	broker := NewBroker()
	defer broker.Close()

	rm, err := NewReadModel(context.Background(), store, broker)
	require.NoError(t, err)
	defer rm.Close()

	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	first := models.Donation{PaymentID: "pay_dup", Amount: 1000, Name: "Anonymous", Date: date}
	broker.Publish(Change{Collection: CollectionDonations, Donation: &first})

	updated := models.Donation{PaymentID: "pay_dup", Amount: 1000, Name: "Ganesh", Date: date}
	broker.Publish(Change{Collection: CollectionDonations, Donation: &updated})

	require.Eventually(t, func() bool {
		donations := rm.Donations()
		return len(donations) == 1 && donations[0].Name == "Ganesh"
	}, time.Second, 10*time.Millisecond)
}

func TestReadModelInitialSnapshot(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertDonation(context.Background(), &models.Donation{
		PaymentID: "pay_seed", Amount: 9000, Date: date,
	}))
	require.NoError(t, store.AddExpense(context.Background(), &models.Expense{
		Purpose: "repairs", Amount: 4000, Date: date,
	}))

	rm, err := NewReadModel(context.Background(), store, nil)
	require.NoError(t, err)
	defer rm.Close()

	assert.Len(t, rm.Donations(), 1)
	assert.Len(t, rm.Expenses(), 1)
	assert.Equal(t, int64(5000), rm.Aggregates().Balance)
}
