package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaptureEvent(t *testing.T) {
	body := []byte(`{
		"event": "payment.captured",
		"payload": {"payment": {"entity": {
			"id": "pay_ABC123",
			"order_id": "order_XYZ",
			"amount": 25000,
			"method": "card",
			"status": "captured",
			"email": "donor@example.com",
			"notes": {"donorName": "Lakshmi"}
		}}}
	}`)

	ev, err := ParseEvent(body)
	require.NoError(t, err)
	assert.Equal(t, EventPaymentCaptured, ev.Kind)

	capture, err := ev.Capture()
	require.NoError(t, err)
	assert.Equal(t, "pay_ABC123", capture.PaymentID)
	assert.Equal(t, "order_XYZ", capture.OrderID)
	assert.Equal(t, int64(25000), capture.Amount)
	assert.Equal(t, "card", capture.Method)
	assert.Equal(t, "captured", capture.Status)
	assert.Equal(t, "Lakshmi", capture.DonorName)
	assert.Equal(t, "donor@example.com", capture.DonorEmail)
}

func TestParseEventUnknownKind(t *testing.T) {
	// unknown tags are a valid, ignored variant, not an error
	ev, err := ParseEvent([]byte(`{"event": "order.paid", "payload": {}}`))
	require.NoError(t, err)
	assert.Equal(t, "order.paid", ev.Kind)

	_, err = ev.Capture()
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestParseEventMalformed(t *testing.T) {
	_, err := ParseEvent([]byte(`not json at all`))
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, err = ParseEvent([]byte(`{"payload": {}}`))
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestCaptureDefaults(t *testing.T) {
	// the gateway sends empty notes as an array; name falls back to
	// Anonymous and method to upi
	body := []byte(`{
		"event": "payment.captured",
		"payload": {"payment": {"entity": {
			"id": "pay_NoNotes",
			"amount": 500,
			"status": "captured",
			"notes": []
		}}}
	}`)

	ev, err := ParseEvent(body)
	require.NoError(t, err)
	capture, err := ev.Capture()
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", capture.DonorName)
	assert.Equal(t, "upi", capture.Method)
	assert.Empty(t, capture.DonorEmail)
}

func TestCaptureMissingFields(t *testing.T) {
	ev, err := ParseEvent([]byte(`{"event": "payment.captured", "payload": {"payment": {"entity": {"amount": 100}}}}`))
	require.NoError(t, err)
	_, err = ev.Capture()
	assert.ErrorIs(t, err, ErrMalformedEvent)

	ev, err = ParseEvent([]byte(`{"event": "payment.captured", "payload": {"payment": {"entity": {"id": "pay_NoAmount"}}}}`))
	require.NoError(t, err)
	_, err = ev.Capture()
	assert.ErrorIs(t, err, ErrMalformedEvent)
}
