package payments

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/dto/requests"
	"healiinn-service/internal/pkg/dto/responses"
	"healiinn-service/internal/pkg/exceptions"
	"healiinn-service/internal/pkg/utils"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	ServiceRequestRepository contracts.ServiceRequestRepository
	OrderRepository          contracts.OrderRepository
	TransactionRepository    contracts.TransactionRepository
	PaymentGatewayService    contracts.PaymentGatewayService
	LockerService            contracts.LockerService
	ProviderNotifier         contracts.ProviderNotifier
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	serviceRequestRepository contracts.ServiceRequestRepository,
	orderRepository contracts.OrderRepository,
	transactionRepository contracts.TransactionRepository,
	paymentGatewayService contracts.PaymentGatewayService,
	lockerService contracts.LockerService,
	providerNotifier contracts.ProviderNotifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			ServiceRequestRepository: serviceRequestRepository,
			OrderRepository:          orderRepository,
			TransactionRepository:    transactionRepository,
			PaymentGatewayService:    paymentGatewayService,
			LockerService:            lockerService,
			ProviderNotifier:         providerNotifier,
			InternalConfig:           internalConfig,
			Log:                      logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreatePaymentOrder(ctx context.Context, patientID, requestID string) (*responses.PaymentOrder, error) {
	reqID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	serviceRequest, err := uc.loadOwnedRequest(ctx, patientID, requestID)
	if err != nil {
		return nil, err
	}

	if serviceRequest.Status != models.RequestStatusAccepted {
		return nil, exceptions.ErrRequestNotPayable(nil, constvars.ErrDevRequestNotAccepted)
	}
	if !serviceRequest.AdminResponse.HasPricedItems() {
		return nil, exceptions.ErrRequestNotPayable(nil, constvars.ErrDevRequestNotPriced)
	}

	// The gateway only accepts integral minor units; the authoritative
	// total is kept in major units.
	amountMinor := int64(math.Round(serviceRequest.AdminResponse.TotalAmount * constvars.GatewayMinorUnitFactor))
	currency := uc.InternalConfig.PaymentGateway.Currency
	if currency == "" {
		currency = constvars.GatewayDefaultCurrency
	}

	gatewayOrder, err := uc.PaymentGatewayService.CreateOrder(ctx, &requests.GatewayOrder{
		AmountMinor: amountMinor,
		Currency:    currency,
		Receipt:     utils.GenerateReceiptID(serviceRequest.ID),
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.CreatePaymentOrder gateway order failed",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
			zap.Error(err),
		)
		return nil, err
	}

	// Latest issued order wins; an abandoned checkout leaves a dangling
	// gateway order that simply never gets paid.
	serviceRequest.PaymentOrderID = gatewayOrder.OrderID
	if _, err := uc.ServiceRequestRepository.UpdateServiceRequest(ctx, serviceRequest); err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreatePaymentOrder order issued",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
		zap.String(constvars.LoggingGatewayOrderKey, gatewayOrder.OrderID),
		zap.Int64("amount_minor", amountMinor),
	)

	return &responses.PaymentOrder{
		OrderID:      gatewayOrder.OrderID,
		Amount:       amountMinor,
		Currency:     currency,
		GatewayKeyID: uc.PaymentGatewayService.KeyID(),
	}, nil
}

func (uc *paymentUsecase) ConfirmPayment(ctx context.Context, patientID, requestID string, request *requests.ConfirmPayment) (*responses.ServiceRequest, error) {
	reqID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	serviceRequest, err := uc.loadOwnedRequest(ctx, patientID, requestID)
	if err != nil {
		return nil, err
	}

	if serviceRequest.PaymentOrderID == "" || serviceRequest.PaymentOrderID != request.OrderID {
		return nil, exceptions.ErrPaymentOrderMismatch(nil)
	}

	lockKey := paymentConfirmLockKey(serviceRequest.ID, request.OrderID)
	lockTTL := time.Duration(uc.InternalConfig.App.PaymentLockTimeoutInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrPaymentConfirmLocked(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("paymentUsecase.ConfirmPayment unlock failed",
				zap.String(constvars.LoggingRequestIDKey, reqID),
				zap.String("lock_key", lockKey),
				zap.Error(err),
			)
		}
	}()

	// Ledger lookup makes re-submission a no-op: if this (request, order)
	// pair already settled, the earlier outcome stands.
	existing, err := uc.TransactionRepository.FindByRequestAndGatewayOrder(ctx, serviceRequest.ID, request.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.TransactionStatusCompleted {
		// A retry after a failed status write must still land the ratchet:
		// the ledger row already proves the payment settled.
		if err := uc.promoteConfirmed(ctx, serviceRequest); err != nil {
			return nil, err
		}
		uc.Log.Info("paymentUsecase.ConfirmPayment duplicate confirmation ignored",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
			zap.String(constvars.LoggingGatewayOrderKey, request.OrderID),
		)
		return uc.requestWithOrders(ctx, serviceRequest)
	}

	if !uc.PaymentGatewayService.VerifyPaymentSignature(request.OrderID, request.PaymentID, request.Signature) {
		uc.Log.Warn("paymentUsecase.ConfirmPayment signature mismatch",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
			zap.String(constvars.LoggingGatewayOrderKey, request.OrderID),
		)
		return nil, exceptions.ErrPaymentSignatureMismatch(nil)
	}

	transaction, err := uc.settle(ctx, serviceRequest, request.OrderID, request.PaymentID, request.PaymentMethod)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.ConfirmPayment payment confirmed",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
		zap.String(constvars.LoggingGatewayOrderKey, request.OrderID),
		zap.String(constvars.LoggingTransactionIDKey, transaction.ID),
	)

	return uc.requestWithOrders(ctx, serviceRequest)
}

func (uc *paymentUsecase) GatewayCallback(ctx context.Context, rawBody []byte, signature string) error {
	reqID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !uc.PaymentGatewayService.VerifyWebhookSignature(rawBody, signature) {
		return exceptions.ErrGatewayCallbackBadSignature(nil)
	}

	var callback requests.GatewayCallback
	if err := json.Unmarshal(rawBody, &callback); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	entity := callback.Payload.Payment.Entity
	if callback.Event != constvars.RazorpayEventPaymentCaptured {
		uc.Log.Info("paymentUsecase.GatewayCallback event ignored",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.String("event", callback.Event),
			zap.String(constvars.LoggingGatewayOrderKey, entity.OrderID),
		)
		return nil
	}

	serviceRequest, err := uc.ServiceRequestRepository.FindByPaymentOrderID(ctx, entity.OrderID)
	if err != nil {
		return err
	}
	if serviceRequest == nil {
		return exceptions.ErrGatewayCallbackUnknownOrder(nil)
	}

	lockKey := paymentConfirmLockKey(serviceRequest.ID, entity.OrderID)
	lockTTL := time.Duration(uc.InternalConfig.App.PaymentLockTimeoutInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		// The client confirm path holds the lock; the gateway retries
		// the webhook on non-2xx.
		return exceptions.ErrPaymentConfirmLocked(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("paymentUsecase.GatewayCallback unlock failed",
				zap.String(constvars.LoggingRequestIDKey, reqID),
				zap.String("lock_key", lockKey),
				zap.Error(err),
			)
		}
	}()

	existing, err := uc.TransactionRepository.FindByRequestAndGatewayOrder(ctx, serviceRequest.ID, entity.OrderID)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Status == models.TransactionStatusCompleted {
			return uc.promoteConfirmed(ctx, serviceRequest)
		}
		return nil
	}

	transaction, err := uc.settle(ctx, serviceRequest, entity.OrderID, entity.ID, entity.Method)
	if err != nil {
		return err
	}

	uc.Log.Info("paymentUsecase.GatewayCallback payment reconciled",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
		zap.String(constvars.LoggingGatewayOrderKey, entity.OrderID),
		zap.String(constvars.LoggingTransactionIDKey, transaction.ID),
	)

	return nil
}

// settle writes the ledger row and promotes the request to confirmed. The
// promotion is one-way: a request that already reached confirmed (or further
// along via cancellation) keeps its status.
func (uc *paymentUsecase) settle(ctx context.Context, serviceRequest *models.ServiceRequest, gatewayOrderID, gatewayPaymentID, paymentMethod string) (*models.Transaction, error) {
	transaction, err := uc.TransactionRepository.CreateTransaction(ctx, &models.Transaction{
		RequestID:        serviceRequest.ID,
		PatientID:        serviceRequest.PatientID,
		GatewayOrderID:   gatewayOrderID,
		GatewayPaymentID: gatewayPaymentID,
		PaymentMethod:    paymentMethod,
		Amount:           serviceRequest.AdminResponse.TotalAmount,
		Currency:         transactionCurrency(uc.InternalConfig),
		Status:           models.TransactionStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.promoteConfirmed(ctx, serviceRequest); err != nil {
		return nil, err
	}

	if err := uc.ProviderNotifier.PublishPaymentConfirmed(ctx, serviceRequest, transaction); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("paymentUsecase.settle error notifying providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceRequestKey, serviceRequest.ID),
			zap.Error(err),
		)
	}

	return transaction, nil
}

// promoteConfirmed applies the one-way paid ratchet. It is idempotent so a
// duplicate confirmation can repair a request whose ledger row was written
// but whose status update failed mid-settle.
func (uc *paymentUsecase) promoteConfirmed(ctx context.Context, serviceRequest *models.ServiceRequest) error {
	if serviceRequest.Status != models.RequestStatusAccepted && serviceRequest.Status != models.RequestStatusPaid {
		return nil
	}
	serviceRequest.Status = models.RequestStatusConfirmed
	_, err := uc.ServiceRequestRepository.UpdateServiceRequest(ctx, serviceRequest)
	return err
}

func (uc *paymentUsecase) requestWithOrders(ctx context.Context, serviceRequest *models.ServiceRequest) (*responses.ServiceRequest, error) {
	orders, err := uc.OrderRepository.FindAllByRequestID(ctx, serviceRequest.ID)
	if err != nil {
		return nil, err
	}
	return &responses.ServiceRequest{
		ServiceRequest: serviceRequest,
		Orders:         orders,
	}, nil
}

func (uc *paymentUsecase) loadOwnedRequest(ctx context.Context, patientID, requestID string) (*models.ServiceRequest, error) {
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

func paymentConfirmLockKey(serviceRequestID, gatewayOrderID string) string {
	return fmt.Sprintf("payment:confirm:%s:%s", serviceRequestID, gatewayOrderID)
}

func transactionCurrency(cfg *config.InternalConfig) string {
	if cfg.PaymentGateway.Currency != "" {
		return cfg.PaymentGateway.Currency
	}
	return constvars.GatewayDefaultCurrency
}
