package ledger

import "math"

// maxAmount caps the rupee amount a single order may carry. The cap keeps
// the paise conversion far inside int64 range; no real donation gets near
// it.
const maxAmount = 1e12

// ToMinorUnits converts a rupee amount into paise, rounding half up.
// The rounded integer is the amount of record for the order; everything
// downstream works in paise so no float ever reaches the ledger.
func ToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 || amount > maxAmount {
		return 0, ErrInvalidAmount
	}
	return int64(math.Round(amount * 100)), nil
}
