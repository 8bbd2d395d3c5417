package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomyCodes(t *testing.T) {
	cause := errors.New("bad input")

	tests := []struct {
		appErr  *AppError
		code    int
		message string
	}{
		{InvalidAmountError(cause), http.StatusBadRequest, "Invalid amount"},
		{GatewayUnconfiguredError(), http.StatusServiceUnavailable, "Razorpay keys not configured on server"},
		{GatewayError(cause), http.StatusInternalServerError, "Order creation failed"},
		{InvalidSignatureError(), http.StatusBadRequest, "Invalid signature"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.appErr.Code)
		assert.Equal(t, tt.message, tt.appErr.Message)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("gateway timeout")
	appErr := GatewayError(cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "Order creation failed")
	assert.Contains(t, appErr.Error(), "gateway timeout")

	// without a cause the message stands alone
	assert.Equal(t, "Invalid signature", InvalidSignatureError().Error())
}

func TestGetAppError(t *testing.T) {
	appErr := InvalidAmountError(nil)
	got := GetAppError(appErr)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusBadRequest, got.Code)

	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(nil))
}
