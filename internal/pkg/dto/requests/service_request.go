package requests

import "mime/multipart"

// CreateServiceRequest is the payload for submitting a new lab or pharmacy
// request. Type accepts the canonical kinds plus the legacy aliases. The
// prescription file arrives as a multipart part next to the form fields.
type CreateServiceRequest struct {
	Type      string `json:"type" form:"type" validate:"required,request_kind"`
	VisitType string `json:"visitType" form:"visitType" validate:"required,visit_type"`

	PrescriptionFile   multipart.File        `json:"-" validate:"-"`
	PrescriptionHeader *multipart.FileHeader `json:"-" validate:"-"`
}

// CancelServiceRequest carries the mandatory cancellation reason, stored
// verbatim on the request and forwarded to the matched provider.
type CancelServiceRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}
