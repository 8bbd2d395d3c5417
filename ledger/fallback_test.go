package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templetrust/sevaledger/models"
)

func TestFileStoreSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	date := time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertDonation(ctx, &models.Donation{
		PaymentID: "cash_abc", Name: "Murthy", Amount: 50000, Mode: "cash", Date: date,
	}))
	require.NoError(t, store.AddExpense(ctx, &models.Expense{
		Purpose: "flowers", Amount: 2500, Date: date,
	}))
	require.NoError(t, store.AddNotification(ctx, &models.Notification{
		Message: "Festival this weekend", Date: date,
	}))

	// simulate a process restart by reopening from the same directory
	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	donations, total, err := reopened.ListDonations(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, donations, 1)
	assert.Equal(t, "Murthy", donations[0].Name)
	assert.Equal(t, int64(50000), donations[0].Amount)

	expenses, _, err := reopened.ListExpenses(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "flowers", expenses[0].Purpose)

	notifications, err := reopened.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)
}

func TestFileStoreUpsertMerges(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertDonation(ctx, &models.Donation{
		PaymentID: "pay_merge", Name: "Anonymous", Amount: 1000, Date: date,
	}))
	require.NoError(t, store.UpsertDonation(ctx, &models.Donation{
		PaymentID: "pay_merge", Name: "Kavya", Amount: 1000, Date: date,
	}))

	donations, total, err := store.ListDonations(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Kavya", donations[0].Name)
}

func TestFileStoreOrderingAndPaging(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"pay_1", "pay_2", "pay_3"} {
		require.NoError(t, store.UpsertDonation(ctx, &models.Donation{
			PaymentID: id, Amount: int64((i + 1) * 100), Date: base.AddDate(0, 0, i),
		}))
	}

	donations, total, err := store.ListDonations(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, donations, 2)
	assert.Equal(t, "pay_3", donations[0].PaymentID)
	assert.Equal(t, "pay_2", donations[1].PaymentID)

	donations, _, err = store.ListDonations(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, "pay_1", donations[0].PaymentID)
}

func TestFileStoreMarkNotificationsRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.AddNotification(ctx, &models.Notification{Message: "a", Date: time.Now()}))
	require.NoError(t, store.AddNotification(ctx, &models.Notification{Message: "b", Date: time.Now()}))
	require.NoError(t, store.MarkNotificationsRead(ctx))

	notifications, err := store.ListNotifications(ctx)
	require.NoError(t, err)
	for _, n := range notifications {
		assert.True(t, n.Read)
	}
}
