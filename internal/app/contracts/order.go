package contracts

import (
	"context"

	"healiinn-service/internal/app/models"
)

type OrderUsecase interface {
	FindAllByPatient(ctx context.Context, patientID string) ([]models.Order, error)
}

// OrderRepository is read-only on this side of the platform: orders are
// created and advanced by the provider-facing services.
type OrderRepository interface {
	FindAllByPatientID(ctx context.Context, patientID string) ([]models.Order, error)
	FindAllByRequestID(ctx context.Context, requestID string) ([]models.Order, error)
}
