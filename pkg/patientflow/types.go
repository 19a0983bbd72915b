// Package patientflow drives the patient side of the request-to-order
// lifecycle: it fetches service requests and orders, derives the view a
// patient sees, orchestrates gateway checkout and cancellation, and keeps
// the local view synchronized by polling.
package patientflow

import "time"

// Kind is the canonical request kind after alias normalization.
type Kind string

const (
	KindLab      Kind = "lab"
	KindPharmacy Kind = "pharmacy"
)

// Status values mirror the server's request lifecycle. Order pipelines feed
// additional provider-local statuses through untouched.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPaid      Status = "paid"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type MedicineItem struct {
	PharmacyID   string  `json:"pharmacyId"`
	PharmacyName string  `json:"pharmacyName,omitempty"`
	MedicineName string  `json:"medicineName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type TestItem struct {
	LabID    string  `json:"labId"`
	LabName  string  `json:"labName,omitempty"`
	TestName string  `json:"testName"`
	Price    float64 `json:"price"`
}

// AdminResponse carries the priced line items. TotalAmount is authoritative;
// it is displayed as-is and never recomputed from the items.
type AdminResponse struct {
	Medicines   []MedicineItem `json:"medicines,omitempty"`
	Tests       []TestItem     `json:"tests,omitempty"`
	TotalAmount float64        `json:"totalAmount"`
}

type Order struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"requestId"`
	ProviderID   string    `json:"providerId"`
	ProviderType string    `json:"providerType"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Request is the raw server record, prior to any view derivation.
type Request struct {
	ID             string         `json:"id"`
	PatientID      string         `json:"patientId"`
	Type           string         `json:"type"`
	Status         Status         `json:"status"`
	VisitType      string         `json:"visitType"`
	PrescriptionID string         `json:"prescriptionId,omitempty"`
	CancelReason   string         `json:"cancelReason,omitempty"`
	AdminResponse  *AdminResponse `json:"adminResponse,omitempty"`
	Orders         []Order        `json:"orders,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// PaymentOrder is the server's answer to a payment-order request. Amount is
// in the gateway's minor currency unit, derived server-side.
type PaymentOrder struct {
	OrderID      string `json:"orderId"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	GatewayKeyID string `json:"gatewayKeyId"`
}

// PaymentConfirmation is what the checkout gateway hands back on success.
type PaymentConfirmation struct {
	PaymentID     string `json:"paymentId"`
	OrderID       string `json:"orderId"`
	Signature     string `json:"signature"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}
