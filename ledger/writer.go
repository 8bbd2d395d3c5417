package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/templetrust/sevaledger/models"
)

// defaultWriteTimeout bounds persistence inside the webhook path. The
// gateway enforces its own webhook timeout, so a write must never hang
// the acknowledgment.
const defaultWriteTimeout = 5 * time.Second

// Writer commits verified capture events to the ledger, exactly one
// logical donation per gateway payment id. It is the only component with
// write access to the donations collection on the payment path.
type Writer struct {
	store         Store
	broker        *Broker
	authoritative bool
	timeout       time.Duration

	mu   sync.Mutex
	keys map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewWriter(store Store, broker *Broker, authoritative bool) *Writer {
	return &Writer{
		store:         store,
		broker:        broker,
		authoritative: authoritative,
		timeout:       defaultWriteTimeout,
		keys:          make(map[string]*keyLock),
	}
}

// ConfirmPayment records a verified gateway event. Event kinds other than
// payment.captured return (nil, nil): accepted, acknowledged, no ledger
// effect. For captures it upserts by payment id with merge semantics, so
// delivering the same event N times leaves one record holding the values
// of the last delivery.
func (w *Writer) ConfirmPayment(ctx context.Context, ev Event) (*models.Donation, error) {
	if ev.Kind != EventPaymentCaptured {
		return nil, nil
	}
	capture, err := ev.Capture()
	if err != nil {
		return nil, err
	}
	if !w.authoritative {
		return nil, fmt.Errorf("%w: running on local fallback store, real payments are not recorded here", ErrPersistenceUnavailable)
	}

	donation := &models.Donation{
		PaymentID: capture.PaymentID,
		OrderID:   capture.OrderID,
		Name:      capture.DonorName,
		Amount:    capture.Amount,
		Mode:      capture.Method,
		Status:    capture.Status,
		Date:      time.Now().UTC(),
	}

	unlock := w.lock(capture.PaymentID)
	defer unlock()

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.store.UpsertDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	if w.broker != nil {
		w.broker.Publish(Change{Collection: CollectionDonations, Donation: donation})
	}
	return donation, nil
}

// lock serializes upserts per payment id. The Postgres store's ON
// CONFLICT upsert is atomic on its own; the per-key critical section
// covers stores without that guarantee, so overlapping redeliveries of
// the same webhook cannot race a read-modify-write.
func (w *Writer) lock(key string) func() {
	w.mu.Lock()
	kl, ok := w.keys[key]
	if !ok {
		kl = &keyLock{}
		w.keys[key] = kl
	}
	kl.refs++
	w.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()
		w.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(w.keys, key)
		}
		w.mu.Unlock()
	}
}
