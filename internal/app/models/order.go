package models

import (
	"time"
)

type ProviderType string

const (
	ProviderTypeLab      ProviderType = "lab"
	ProviderTypePharmacy ProviderType = "pharmacy"
)

type OrderStatus string

// Pharmacy fulfilment pipeline.
const (
	OrderStatusAccepted        OrderStatus = "accepted"
	OrderStatusPacked          OrderStatus = "packed"
	OrderStatusReadyToBePicked OrderStatus = "ready_to_be_picked"
	OrderStatusPickedUp        OrderStatus = "picked_up"
	OrderStatusDelivered       OrderStatus = "delivered"
)

// Lab fulfilment pipeline.
const (
	OrderStatusSampleCollected       OrderStatus = "sample_collected"
	OrderStatusBeingTested           OrderStatus = "being_tested"
	OrderStatusReportsBeingGenerated OrderStatus = "reports_being_generated"
	OrderStatusTestSuccessful        OrderStatus = "test_successful"
	OrderStatusReportsUpdated        OrderStatus = "reports_updated"
	OrderStatusVisitTime             OrderStatus = "visit_time"
	OrderStatusCompleted             OrderStatus = "completed"
)

// Order is one provider's fulfilment unit, created when a provider accepts a
// priced request. Orders are never deleted, only advanced to a terminal
// status by provider-side actions.
type Order struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	RequestID    string       `bson:"request_id" json:"requestId"`
	PatientID    string       `bson:"patient_id" json:"patientId"`
	ProviderID   string       `bson:"provider_id" json:"providerId"`
	ProviderName string       `bson:"provider_name,omitempty" json:"providerName,omitempty"`
	ProviderType ProviderType `bson:"provider_type" json:"providerType"`
	Status       OrderStatus  `bson:"status" json:"status"`
	CreatedAt    time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updatedAt"`
}
