package ledger

import "errors"

var (
	// ErrInvalidAmount is returned when a requested donation amount is not
	// a finite number greater than zero.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMalformedEvent is returned when a verified webhook body is missing
	// the fields a capture needs. The caller logs it and still acknowledges
	// the gateway.
	ErrMalformedEvent = errors.New("malformed event")

	// ErrPersistenceUnavailable is returned when the durable store cannot
	// be reached. Non-fatal on the webhook path: the event was verified, so
	// the gateway gets its acknowledgment either way.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)
