package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/templetrust/sevaledger/models"
)

// Service bundles the ledger ports handed to the HTTP layer. It is built
// once in main and injected into the controllers; the ledger itself keeps
// no package-level state.
type Service struct {
	Store  Store
	Broker *Broker
	Writer *Writer

	// Fallback is true when the durable store was unreachable at startup
	// and the service is running on the local snapshot. Real payments are
	// not recorded in this mode; manual entries still are.
	Fallback bool
}

func NewService(store Store, broker *Broker, fallback bool) *Service {
	return &Service{
		Store:    store,
		Broker:   broker,
		Writer:   NewWriter(store, broker, !fallback),
		Fallback: fallback,
	}
}

// AddCashDonation records an administrator-entered cash pledge. Cash
// entries never come from the gateway, so they get a synthetic payment id
// to satisfy the one-record-per-key invariant.
func (s *Service) AddCashDonation(ctx context.Context, name string, amount int64, date time.Time) (*models.Donation, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if name == "" {
		name = "Anonymous"
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	donation := &models.Donation{
		PaymentID: "cash_" + uuid.New().String(),
		Name:      name,
		Amount:    amount,
		Mode:      "cash",
		Status:    "recorded",
		Date:      date,
	}
	if err := s.Store.UpsertDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	s.publish(Change{Collection: CollectionDonations, Donation: donation})
	return donation, nil
}

// AddExpense records an administrator-entered expense.
func (s *Service) AddExpense(ctx context.Context, e *models.Expense) error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	if err := s.Store.AddExpense(ctx, e); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	s.publish(Change{Collection: CollectionExpenses, Expense: e})
	return nil
}

// AddNotification records a broadcast message.
func (s *Service) AddNotification(ctx context.Context, n *models.Notification) error {
	if n.Date.IsZero() {
		n.Date = time.Now().UTC()
	}
	if err := s.Store.AddNotification(ctx, n); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	s.publish(Change{Collection: CollectionNotifications, Notification: n})
	return nil
}

func (s *Service) publish(change Change) {
	if s.Broker != nil {
		s.Broker.Publish(change)
	}
}
