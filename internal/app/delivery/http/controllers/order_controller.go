package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/exceptions"
	"healiinn-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type OrderController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	OrderUsecase   contracts.OrderUsecase
}

var (
	orderControllerInstance *OrderController
	onceOrderController     sync.Once
)

func NewOrderController(logger *zap.Logger, internalConfig *config.InternalConfig, orderUsecase contracts.OrderUsecase) *OrderController {
	onceOrderController.Do(func() {
		instance := &OrderController{
			Log:            logger,
			InternalConfig: internalConfig,
			OrderUsecase:   orderUsecase,
		}
		orderControllerInstance = instance
	})
	return orderControllerInstance
}

func (ctrl *OrderController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	patientID := utils.GetPatientID(r.Context())

	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	result, err := ctrl.OrderUsecase.FindAllByPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessListOrders, result)
}
