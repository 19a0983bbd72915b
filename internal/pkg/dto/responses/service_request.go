package responses

import (
	"healiinn-service/internal/app/models"
)

// ServiceRequest is a raw request together with the orders derived from it.
// Status precedence and display derivation are intentionally left to the
// consumer; the API only serves authoritative state.
type ServiceRequest struct {
	*models.ServiceRequest
	Orders          []models.Order `json:"orders,omitempty"`
	PrescriptionURL string         `json:"prescriptionUrl,omitempty"`
}
