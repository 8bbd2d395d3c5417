package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/templetrust/sevaledger/models"
)

// Aggregates are the derived figures shown on the public dashboard. All
// amounts are paise. Monthly buckets collected donations by "YYYY-MM";
// their sum always equals TotalCollected.
type Aggregates struct {
	TotalCollected int64            `json:"total_collected"`
	TotalSpent     int64            `json:"total_spent"`
	Balance        int64            `json:"balance"`
	Monthly        map[string]int64 `json:"monthly"`
}

// ComputeAggregates derives totals from full collections. Pure; shared by
// the read model and the dashboard endpoint.
func ComputeAggregates(donations []models.Donation, expenses []models.Expense) Aggregates {
	agg := Aggregates{Monthly: make(map[string]int64)}
	for _, d := range donations {
		agg.TotalCollected += d.Amount
		agg.Monthly[d.Date.Format("2006-01")] += d.Amount
	}
	for _, e := range expenses {
		agg.TotalSpent += e.Amount
	}
	agg.Balance = agg.TotalCollected - agg.TotalSpent
	return agg
}

// ReadModel is a live, ordered view of the ledger: an initial snapshot
// from the store, then incremental changes from the broker. Donations and
// expenses stay sorted by date descending; aggregates are recomputed on
// every change. Close unsubscribes.
type ReadModel struct {
	mu        sync.RWMutex
	donations []models.Donation
	expenses  []models.Expense
	agg       Aggregates

	sub      *Subscription
	done     chan struct{}
	stopOnce sync.Once
}

func NewReadModel(ctx context.Context, store Store, broker *Broker) (*ReadModel, error) {
	donations, _, err := store.ListDonations(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	expenses, _, err := store.ListExpenses(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	rm := &ReadModel{
		donations: donations,
		expenses:  expenses,
		done:      make(chan struct{}),
	}
	rm.mu.Lock()
	rm.recompute()
	rm.mu.Unlock()

	if broker != nil {
		rm.sub = broker.Subscribe()
		go rm.loop()
	}
	return rm, nil
}

func (rm *ReadModel) loop() {
	for {
		select {
		case change, ok := <-rm.sub.C:
			if !ok {
				return
			}
			rm.apply(change)
		case <-rm.done:
			return
		}
	}
}

func (rm *ReadModel) apply(change Change) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	switch change.Collection {
	case CollectionDonations:
		if change.Donation == nil {
			return
		}
		merged := false
		for i := range rm.donations {
			if rm.donations[i].PaymentID == change.Donation.PaymentID {
				rm.donations[i] = *change.Donation
				merged = true
				break
			}
		}
		if !merged {
			rm.donations = append(rm.donations, *change.Donation)
		}
	case CollectionExpenses:
		if change.Expense == nil {
			return
		}
		rm.expenses = append(rm.expenses, *change.Expense)
	default:
		return
	}
	rm.recompute()
}

// recompute re-sorts and re-derives aggregates. Callers hold rm.mu.
func (rm *ReadModel) recompute() {
	sort.SliceStable(rm.donations, func(i, j int) bool {
		return rm.donations[i].Date.After(rm.donations[j].Date)
	})
	sort.SliceStable(rm.expenses, func(i, j int) bool {
		return rm.expenses[i].Date.After(rm.expenses[j].Date)
	})
	rm.agg = ComputeAggregates(rm.donations, rm.expenses)
}

// Donations returns a copy of the current snapshot, newest first.
func (rm *ReadModel) Donations() []models.Donation {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	out := make([]models.Donation, len(rm.donations))
	copy(out, rm.donations)
	return out
}

// Expenses returns a copy of the current snapshot, newest first.
func (rm *ReadModel) Expenses() []models.Expense {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	out := make([]models.Expense, len(rm.expenses))
	copy(out, rm.expenses)
	return out
}

func (rm *ReadModel) Aggregates() Aggregates {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	agg := rm.agg
	monthly := make(map[string]int64, len(agg.Monthly))
	for k, v := range agg.Monthly {
		monthly[k] = v
	}
	agg.Monthly = monthly
	return agg
}

func (rm *ReadModel) Close() {
	rm.stopOnce.Do(func() {
		close(rm.done)
		if rm.sub != nil {
			rm.sub.Close()
		}
	})
}
