package models

import (
	"time"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable ledger row. It is created only by a successful
// payment verification and is never mutated afterwards; (RequestID,
// GatewayOrderID) is unique, which is what makes verification idempotent.
type Transaction struct {
	ID               string            `json:"id"`
	RequestID        string            `json:"request_id"`
	PatientID        string            `json:"patient_id"`
	GatewayOrderID   string            `json:"gateway_order_id"`
	GatewayPaymentID string            `json:"gateway_payment_id"`
	PaymentMethod    string            `json:"payment_method,omitempty"`
	Amount           float64           `json:"amount"`
	Currency         string            `json:"currency"`
	Status           TransactionStatus `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
}
