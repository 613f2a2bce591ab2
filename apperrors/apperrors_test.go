package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidOrderStatus, http.StatusBadRequest},
		{CodeInsufficientInventory, http.StatusBadRequest},
		{CodePaymentFailed, http.StatusBadRequest},
		{CodeCancelFailed, http.StatusBadRequest},
		{CodeRefundFailed, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeOrderNotFound, http.StatusNotFound},
		{CodeProductNotFound, http.StatusNotFound},
		{CodeStoreNotFound, http.StatusNotFound},
		{CodeCustomerNotFound, http.StatusNotFound},
		{CodeDatabase, http.StatusInternalServerError},
		{CodeSystemError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.code))
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeCancelFailed, CodeOf(New(CodeCancelFailed, "already terminal")))
	assert.Equal(t, CodeSystemError, CodeOf(errors.New("plain error")))

	// The code survives wrapping
	wrapped := fmt.Errorf("outer: %w", Newf(CodeOrderNotFound, "order %d not found", 7))
	assert.Equal(t, CodeOrderNotFound, CodeOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(CodeDatabase, "failed to load order", cause)

	assert.Equal(t, "failed to load order", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, CodeDatabase, CodeOf(err))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "INSUFFICIENT_INVENTORY", CodeInsufficientInventory.String())
	assert.Equal(t, "ERROR_12345", Code(12345).String())
}
