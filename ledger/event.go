package ledger

import (
	"encoding/json"
	"fmt"
)

// Event kinds delivered by the gateway. Only EventPaymentCaptured carries
// a payload the writer acts on; every other kind, known or unknown, is a
// valid acknowledged no-op.
const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

// Event is the webhook envelope posted by Razorpay. The payload schema is
// only interpreted for capture events.
type Event struct {
	Kind    string  `json:"event"`
	Payload payload `json:"payload"`
}

type payload struct {
	Payment struct {
		Entity paymentEntity `json:"entity"`
	} `json:"payment"`
}

type paymentEntity struct {
	ID      string          `json:"id"`
	OrderID string          `json:"order_id"`
	Amount  int64           `json:"amount"`
	Method  string          `json:"method"`
	Status  string          `json:"status"`
	Email   string          `json:"email"`
	Notes   json.RawMessage `json:"notes"`
}

// ParseEvent decodes a webhook body. Callers must verify the signature on
// the raw bytes before parsing, never after.
func ParseEvent(raw []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if ev.Kind == "" {
		return Event{}, fmt.Errorf("%w: missing event type", ErrMalformedEvent)
	}
	return ev, nil
}

// CaptureEvent is the payment.captured data the ledger writer consumes.
// Every field comes from the gateway payload; nothing is taken from the
// client that initiated the order, since at confirmation time the webhook
// is the only trusted source.
type CaptureEvent struct {
	PaymentID  string
	OrderID    string
	Amount     int64 // paise, as captured by the gateway
	Method     string
	Status     string
	DonorName  string
	DonorEmail string
}

// Capture extracts the capture fields from the event.
func (e Event) Capture() (CaptureEvent, error) {
	if e.Kind != EventPaymentCaptured {
		return CaptureEvent{}, fmt.Errorf("%w: %s is not a capture event", ErrMalformedEvent, e.Kind)
	}
	p := e.Payload.Payment.Entity
	if p.ID == "" {
		return CaptureEvent{}, fmt.Errorf("%w: missing payment id", ErrMalformedEvent)
	}
	if p.Amount <= 0 {
		return CaptureEvent{}, fmt.Errorf("%w: missing captured amount for payment %s", ErrMalformedEvent, p.ID)
	}

	notes := decodeNotes(p.Notes)
	name := notes["donorName"]
	if name == "" {
		name = notes["name"]
	}
	if name == "" {
		name = "Anonymous"
	}
	email := notes["donorEmail"]
	if email == "" {
		email = p.Email
	}
	method := p.Method
	if method == "" {
		method = "upi"
	}

	return CaptureEvent{
		PaymentID:  p.ID,
		OrderID:    p.OrderID,
		Amount:     p.Amount,
		Method:     method,
		Status:     p.Status,
		DonorName:  name,
		DonorEmail: email,
	}, nil
}

// decodeNotes tolerates the gateway sending notes as an object, an empty
// array, or nothing at all. Only string values are kept.
func decodeNotes(raw json.RawMessage) map[string]string {
	out := make(map[string]string)
	if len(raw) == 0 {
		return out
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return out
	}
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
