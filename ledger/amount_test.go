package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	paise, err := ToMinorUnits(250.00)
	assert.NoError(t, err)
	assert.Equal(t, int64(25000), paise)

	paise, err = ToMinorUnits(99.99)
	assert.NoError(t, err)
	assert.Equal(t, int64(9999), paise)

	// rounding is half up on the paise boundary
	paise, err = ToMinorUnits(0.005)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), paise)

	paise, err = ToMinorUnits(1.004)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), paise)
}

func TestToMinorUnitsRejectsBadInput(t *testing.T) {
	for _, amount := range []float64{0, -1, -250.50, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ToMinorUnits(amount)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v should be rejected", amount)
	}
}

func TestToMinorUnitsRejectsAbsurdAmounts(t *testing.T) {
	// finite but beyond any plausible donation; the conversion would
	// otherwise overflow into a garbage paise value
	for _, amount := range []float64{1e17, 1e12 + 1, math.MaxFloat64} {
		_, err := ToMinorUnits(amount)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v should be rejected", amount)
	}

	// the cap itself still converts
	paise, err := ToMinorUnits(1e12)
	assert.NoError(t, err)
	assert.Equal(t, int64(1e14), paise)
}
