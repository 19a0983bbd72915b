package controllers

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/dto/requests"
	"healiinn-service/internal/pkg/exceptions"
	"healiinn-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	PaymentUsecase contracts.PaymentUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, internalConfig *config.InternalConfig, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	oncePaymentController.Do(func() {
		instance := &PaymentController{
			Log:            logger,
			InternalConfig: internalConfig,
			PaymentUsecase: paymentUsecase,
		}
		paymentControllerInstance = instance
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	patientID := utils.GetPatientID(r.Context())

	serviceRequestID := chi.URLParam(r, constvars.URLParamRequestID)
	if serviceRequestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamRequestID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.PaymentUsecase.CreatePaymentOrder(ctx, patientID, serviceRequestID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "payment_order_created", requestID,
		zap.String(constvars.LoggingServiceRequestKey, serviceRequestID),
		zap.String(constvars.LoggingGatewayOrderKey, result.OrderID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessCreatePaymentOrder, result)
}

func (ctrl *PaymentController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	patientID := utils.GetPatientID(r.Context())

	serviceRequestID := chi.URLParam(r, constvars.URLParamRequestID)
	if serviceRequestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamRequestID))
		return
	}

	request := new(requests.ConfirmPayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.PaymentUsecase.ConfirmPayment(ctx, patientID, serviceRequestID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "payment_confirmed", requestID,
		zap.String(constvars.LoggingServiceRequestKey, serviceRequestID),
		zap.String(constvars.LoggingGatewayOrderKey, request.OrderID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessConfirmPayment, result)
}

// GatewayCallback is the unauthenticated server-to-server webhook; the
// signature header is the only credential, so the raw body must be read
// before any decoding.
func (ctrl *PaymentController) GatewayCallback(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "gateway_callback_received", requestID, "info",
		zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
	)

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	signature := r.Header.Get(constvars.HeaderRazorpaySignature)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	if err := ctrl.PaymentUsecase.GatewayCallback(ctx, rawBody, signature); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGatewayCallback, nil)
}

func (ctrl *PaymentController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}
