package requests

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/dto/requests"
	"healiinn-service/internal/pkg/dto/responses"
	"healiinn-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type serviceRequestUsecase struct {
	ServiceRequestRepository contracts.ServiceRequestRepository
	OrderRepository          contracts.OrderRepository
	ProviderNotifier         contracts.ProviderNotifier
	StorageService           contracts.StorageService
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
}

var (
	serviceRequestUsecaseInstance contracts.ServiceRequestUsecase
	onceServiceRequestUsecase     sync.Once
)

func NewServiceRequestUsecase(
	serviceRequestRepository contracts.ServiceRequestRepository,
	orderRepository contracts.OrderRepository,
	providerNotifier contracts.ProviderNotifier,
	storageService contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ServiceRequestUsecase {
	onceServiceRequestUsecase.Do(func() {
		instance := &serviceRequestUsecase{
			ServiceRequestRepository: serviceRequestRepository,
			OrderRepository:          orderRepository,
			ProviderNotifier:         providerNotifier,
			StorageService:           storageService,
			InternalConfig:           internalConfig,
			Log:                      logger,
		}
		serviceRequestUsecaseInstance = instance
	})
	return serviceRequestUsecaseInstance
}

func (uc *serviceRequestUsecase) FindAllByPatient(ctx context.Context, patientID string) ([]responses.ServiceRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("serviceRequestUsecase.FindAllByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	serviceRequests, err := uc.ServiceRequestRepository.FindAllByPatientID(ctx, patientID)
	if err != nil {
		uc.Log.Error("serviceRequestUsecase.FindAllByPatient error fetching requests",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.ServiceRequest, 0, len(serviceRequests))
	for i := range serviceRequests {
		serviceRequest := serviceRequests[i]
		orders, err := uc.OrderRepository.FindAllByRequestID(ctx, serviceRequest.ID)
		if err != nil {
			uc.Log.Error("serviceRequestUsecase.FindAllByPatient error fetching orders",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
				zap.Error(err),
			)
			return nil, err
		}
		result = append(result, responses.ServiceRequest{
			ServiceRequest: &serviceRequest,
			Orders:         orders,
		})
	}

	return result, nil
}

func (uc *serviceRequestUsecase) FindByID(ctx context.Context, patientID, requestID string) (*responses.ServiceRequest, error) {
	serviceRequest, err := uc.loadOwnedRequest(ctx, patientID, requestID)
	if err != nil {
		return nil, err
	}

	orders, err := uc.OrderRepository.FindAllByRequestID(ctx, serviceRequest.ID)
	if err != nil {
		return nil, err
	}

	response := &responses.ServiceRequest{
		ServiceRequest: serviceRequest,
		Orders:         orders,
	}

	if serviceRequest.PrescriptionID != "" {
		expiry := time.Duration(uc.InternalConfig.App.PrescriptionURLExpiryHours) * time.Hour
		url, err := uc.StorageService.PresignedPrescriptionURL(ctx, serviceRequest.PrescriptionID, expiry)
		if err != nil {
			uc.Log.Warn("serviceRequestUsecase.FindByID presign failed",
				zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
				zap.Error(err),
			)
		} else {
			response.PrescriptionURL = url
		}
	}

	return response, nil
}

func (uc *serviceRequestUsecase) Create(ctx context.Context, patientID string, request *requests.CreateServiceRequest) (*responses.ServiceRequest, error) {
	reqID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	kind, ok := models.NormalizeRequestKind(request.Type)
	if !ok {
		return nil, exceptions.ErrInputValidation(errors.New("unknown request kind " + request.Type))
	}

	prescriptionID := ""
	if request.PrescriptionFile != nil && request.PrescriptionHeader != nil {
		objectName, err := uc.StorageService.UploadPrescription(ctx, patientID, request.PrescriptionFile, request.PrescriptionHeader)
		if err != nil {
			return nil, err
		}
		prescriptionID = objectName
	}

	serviceRequest := &models.ServiceRequest{
		PatientID:      patientID,
		Kind:           kind,
		Status:         models.RequestStatusPending,
		VisitType:      models.VisitType(request.VisitType),
		PrescriptionID: prescriptionID,
	}

	created, err := uc.ServiceRequestRepository.CreateServiceRequest(ctx, serviceRequest)
	if err != nil {
		uc.Log.Error("serviceRequestUsecase.Create error inserting request",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("serviceRequestUsecase.Create request submitted",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.String(constvars.LoggingServiceRequestKey, created.ID),
		zap.String("kind", string(created.Kind)),
	)

	return &responses.ServiceRequest{ServiceRequest: created}, nil
}

func (uc *serviceRequestUsecase) Cancel(ctx context.Context, patientID, requestID string, request *requests.CancelServiceRequest) (*responses.ServiceRequest, error) {
	reqID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if strings.TrimSpace(request.Reason) == "" {
		return nil, exceptions.ErrCancelReasonRequired(nil)
	}

	serviceRequest, err := uc.loadOwnedRequest(ctx, patientID, requestID)
	if err != nil {
		return nil, err
	}

	orders, err := uc.OrderRepository.FindAllByRequestID(ctx, serviceRequest.ID)
	if err != nil {
		return nil, err
	}

	if err := cancellationAllowed(serviceRequest, orders); err != nil {
		uc.Log.Warn("serviceRequestUsecase.Cancel rejected",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
			zap.String("status", string(serviceRequest.Status)),
			zap.Int("orders", len(orders)),
		)
		return nil, err
	}

	serviceRequest.Status = models.RequestStatusCancelled
	serviceRequest.CancelReason = request.Reason

	updated, err := uc.ServiceRequestRepository.UpdateServiceRequest(ctx, serviceRequest)
	if err != nil {
		return nil, err
	}

	// Provider notification is fire-and-forget from the caller's point of
	// view: the cancellation itself has already been persisted.
	if err := uc.ProviderNotifier.PublishRequestCancelled(ctx, updated); err != nil {
		uc.Log.Error("serviceRequestUsecase.Cancel error notifying provider",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.String(constvars.LoggingServiceRequestKey, updated.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info("serviceRequestUsecase.Cancel request cancelled",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.String(constvars.LoggingServiceRequestKey, updated.ID),
	)

	return &responses.ServiceRequest{ServiceRequest: updated}, nil
}

func (uc *serviceRequestUsecase) loadOwnedRequest(ctx context.Context, patientID, requestID string) (*models.ServiceRequest, error) {
	serviceRequest, err := uc.ServiceRequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if serviceRequest == nil {
		return nil, exceptions.ErrRequestNotFound(nil)
	}
	if serviceRequest.PatientID != patientID {
		return nil, exceptions.ErrRequestNotOwnedByPatient(nil)
	}
	return serviceRequest, nil
}

// cancellationAllowed is the authoritative allowed-transition table for
// cancellation: pending and accepted are always cancellable; a confirmed
// request is cancellable only while no provider has accepted it (no order
// exists yet). Everything else is rejected.
func cancellationAllowed(request *models.ServiceRequest, orders []models.Order) error {
	switch request.Status {
	case models.RequestStatusPending, models.RequestStatusAccepted:
		return nil
	case models.RequestStatusConfirmed:
		if len(orders) == 0 {
			return nil
		}
		return exceptions.ErrCancellationRejected(nil, constvars.ErrDevCancellationFulfilmentBegun)
	default:
		return exceptions.ErrCancellationRejected(nil, constvars.ErrDevCancellationNotAllowed)
	}
}
