package patientflow

import (
	"errors"
	"fmt"
)

// ErrCheckoutDismissed is returned by a CheckoutGateway when the user closes
// the checkout without completing. It is not a failure.
var ErrCheckoutDismissed = errors.New("checkout dismissed")

// NetworkError wraps a connectivity-class failure. The synchronizer logs
// these instead of surfacing them on every tick.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError means the operation was rejected locally, before any
// network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// OrderCreationError is the server refusing to open a payment order.
type OrderCreationError struct {
	StatusCode int
	Message    string
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("payment order rejected (%d): %s", e.StatusCode, e.Message)
}

// PaymentVerificationError means the server could not verify the gateway
// result; no amount has been applied.
type PaymentVerificationError struct {
	StatusCode int
	Message    string
}

func (e *PaymentVerificationError) Error() string {
	return fmt.Sprintf("payment verification failed (%d): %s", e.StatusCode, e.Message)
}

// CancellationRejectedError carries the server's rejection reason verbatim.
type CancellationRejectedError struct {
	StatusCode int
	Reason     string
}

func (e *CancellationRejectedError) Error() string { return e.Reason }
