package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a failure class. The numeric ranges follow the
// transport mapping: 400xx validation, 401xx auth, 403xx forbidden,
// 404xx missing entity, 500xx system.
type Code int

const (
	CodeSystemError Code = 50001
	CodeDatabase    Code = 50002

	CodeParameter             Code = 40001
	CodeValidation            Code = 40002
	CodeInvalidOrderStatus    Code = 40003
	CodeInsufficientInventory Code = 40004
	CodePaymentFailed         Code = 40005
	CodeCancelFailed          Code = 40006
	CodeRefundFailed          Code = 40007

	CodeUnauthorized Code = 40101
	CodeForbidden    Code = 40301

	CodeOrderNotFound    Code = 40401
	CodeResourceNotFound Code = 40402
	CodeProductNotFound  Code = 40403
	CodeStoreNotFound    Code = 40404
	CodeCustomerNotFound Code = 40405
)

var codeNames = map[Code]string{
	CodeSystemError:           "SYSTEM_ERROR",
	CodeDatabase:              "DATABASE_ERROR",
	CodeParameter:             "PARAMETER_ERROR",
	CodeValidation:            "VALIDATION_ERROR",
	CodeInvalidOrderStatus:    "INVALID_ORDER_STATUS",
	CodeInsufficientInventory: "INSUFFICIENT_INVENTORY",
	CodePaymentFailed:         "PAYMENT_FAILED",
	CodeCancelFailed:          "CANCEL_FAILED",
	CodeRefundFailed:          "REFUND_FAILED",
	CodeUnauthorized:          "UNAUTHORIZED",
	CodeForbidden:             "FORBIDDEN",
	CodeOrderNotFound:         "ORDER_NOT_FOUND",
	CodeResourceNotFound:      "RESOURCE_NOT_FOUND",
	CodeProductNotFound:       "PRODUCT_NOT_FOUND",
	CodeStoreNotFound:         "STORE_NOT_FOUND",
	CodeCustomerNotFound:      "CUSTOMER_NOT_FOUND",
}

// String returns the symbolic name used in API error envelopes.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ERROR_%d", int(c))
}

// Error is the single business-error type. Every failed core operation
// yields exactly one of these, carrying the failure class and a detail
// message for the caller.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error with a detail message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds an Error with a formatted detail message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a new Error so callers can still errors.Is
// against the underlying failure.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// From extracts the *Error from err, or nil if err carries none.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// CodeOf returns the failure class of err, defaulting to SYSTEM_ERROR
// for errors that did not originate in the core.
func CodeOf(err error) Code {
	if appErr := From(err); appErr != nil {
		return appErr.Code
	}
	return CodeSystemError
}

// HTTPStatus maps a failure class to a transport status. This is a pure
// boundary concern: the core never consults it.
func HTTPStatus(code Code) int {
	switch int(code) / 100 {
	case 400:
		return http.StatusBadRequest
	case 401:
		return http.StatusUnauthorized
	case 403:
		return http.StatusForbidden
	case 404:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
