package contracts

import (
	"context"

	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/dto/requests"
	"healiinn-service/internal/pkg/dto/responses"
)

type ServiceRequestUsecase interface {
	FindAllByPatient(ctx context.Context, patientID string) ([]responses.ServiceRequest, error)
	FindByID(ctx context.Context, patientID, requestID string) (*responses.ServiceRequest, error)
	Create(ctx context.Context, patientID string, request *requests.CreateServiceRequest) (*responses.ServiceRequest, error)
	Cancel(ctx context.Context, patientID, requestID string, request *requests.CancelServiceRequest) (*responses.ServiceRequest, error)
}

type ServiceRequestRepository interface {
	FindAllByPatientID(ctx context.Context, patientID string) ([]models.ServiceRequest, error)
	FindByID(ctx context.Context, requestID string) (*models.ServiceRequest, error)
	FindByPaymentOrderID(ctx context.Context, paymentOrderID string) (*models.ServiceRequest, error)
	CreateServiceRequest(ctx context.Context, request *models.ServiceRequest) (*models.ServiceRequest, error)
	UpdateServiceRequest(ctx context.Context, request *models.ServiceRequest) (*models.ServiceRequest, error)
}
