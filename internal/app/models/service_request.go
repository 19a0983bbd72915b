package models

import (
	"time"
)

type RequestKind string

const (
	RequestKindLab      RequestKind = "lab"
	RequestKindPharmacy RequestKind = "pharmacy"
)

// Legacy kind aliases still sent by older clients.
const (
	RequestKindAliasLabVisit      = "book_test_visit"
	RequestKindAliasOrderMedicine = "order_medicine"
)

// NormalizeRequestKind maps the wire aliases onto the two canonical kinds.
func NormalizeRequestKind(raw string) (RequestKind, bool) {
	switch raw {
	case string(RequestKindLab), RequestKindAliasLabVisit:
		return RequestKindLab, true
	case string(RequestKindPharmacy), RequestKindAliasOrderMedicine:
		return RequestKindPharmacy, true
	}
	return "", false
}

type VisitType string

const (
	VisitTypeLab  VisitType = "lab"
	VisitTypeHome VisitType = "home"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusPaid      RequestStatus = "paid"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// MedicineItem is one priced pharmacy line inside an admin response.
type MedicineItem struct {
	PharmacyID   string  `bson:"pharmacy_id" json:"pharmacyId"`
	PharmacyName string  `bson:"pharmacy_name" json:"pharmacyName"`
	MedicineName string  `bson:"medicine_name" json:"medicineName"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	Price        float64 `bson:"price" json:"price"`
}

// TestItem is one priced lab test inside an admin response.
type TestItem struct {
	LabID    string  `bson:"lab_id" json:"labId"`
	LabName  string  `bson:"lab_name" json:"labName"`
	TestName string  `bson:"test_name" json:"testName"`
	Price    float64 `bson:"price" json:"price"`
}

// AdminResponse carries the priced line items produced during matching.
// TotalAmount is the authoritative charge; it is never recomputed from the
// line items on read paths.
type AdminResponse struct {
	Medicines   []MedicineItem `bson:"medicines,omitempty" json:"medicines,omitempty"`
	Tests       []TestItem     `bson:"tests,omitempty" json:"tests,omitempty"`
	TotalAmount float64        `bson:"total_amount" json:"totalAmount"`
}

// HasPricedItems reports whether the response holds at least one line item
// and a positive total, the precondition for opening a payment.
func (a *AdminResponse) HasPricedItems() bool {
	if a == nil {
		return false
	}
	return (len(a.Medicines) > 0 || len(a.Tests) > 0) && a.TotalAmount > 0
}

type ServiceRequest struct {
	ID             string         `bson:"_id,omitempty" json:"id"`
	PatientID      string         `bson:"patient_id" json:"patientId"`
	Kind           RequestKind    `bson:"kind" json:"type"`
	Status         RequestStatus  `bson:"status" json:"status"`
	VisitType      VisitType      `bson:"visit_type" json:"visitType"`
	PrescriptionID string         `bson:"prescription_id,omitempty" json:"prescriptionId,omitempty"`
	AdminResponse  *AdminResponse `bson:"admin_response,omitempty" json:"adminResponse,omitempty"`
	PaymentOrderID string         `bson:"payment_order_id,omitempty" json:"-"`
	CancelReason   string         `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt      time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updated_at" json:"updatedAt"`
}
