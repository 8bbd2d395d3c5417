package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templetrust/sevaledger/models"
)

func TestBrokerPublishSubscribe(t *testing.T) {
	broker := NewBroker()
	defer broker.Close()

	sub := broker.Subscribe()
	defer sub.Close()

	donation := &models.Donation{PaymentID: "pay_ps", Amount: 100}
	broker.Publish(Change{Collection: CollectionDonations, Donation: donation})

	select {
	case change := <-sub.C:
		assert.Equal(t, CollectionDonations, change.Collection)
		require.NotNil(t, change.Donation)
		assert.Equal(t, "pay_ps", change.Donation.PaymentID)
		assert.NotEmpty(t, change.Origin)
	case <-time.After(time.Second):
		t.Fatal("no change received")
	}
}

func TestBrokerUnsubscribeClosesChannel(t *testing.T) {
	broker := NewBroker()
	defer broker.Close()

	sub := broker.Subscribe()
	sub.Close()
	sub.Close() // idempotent

	_, ok := <-sub.C
	assert.False(t, ok)

	// publishing after unsubscribe must not panic
	broker.Publish(Change{Collection: CollectionExpenses, Expense: &models.Expense{Amount: 1}})
}

func TestBrokerMultipleSubscribers(t *testing.T) {
	broker := NewBroker()
	defer broker.Close()

	first := broker.Subscribe()
	second := broker.Subscribe()
	defer first.Close()
	defer second.Close()

	broker.Publish(Change{Collection: CollectionDonations, Donation: &models.Donation{PaymentID: "pay_multi"}})

	for _, sub := range []*Subscription{first, second} {
		select {
		case change := <-sub.C:
			assert.Equal(t, "pay_multi", change.Donation.PaymentID)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed change")
		}
	}
}

func TestBrokerCloseClosesSubscribers(t *testing.T) {
	broker := NewBroker()
	sub := broker.Subscribe()
	broker.Close()

	_, ok := <-sub.C
	assert.False(t, ok)

	// subscribing after close yields a closed channel rather than a leak
	late := broker.Subscribe()
	_, ok = <-late.C
	assert.False(t, ok)
}
