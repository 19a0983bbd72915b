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

type TransactionController struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	TransactionUsecase contracts.TransactionUsecase
}

var (
	transactionControllerInstance *TransactionController
	onceTransactionController     sync.Once
)

func NewTransactionController(logger *zap.Logger, internalConfig *config.InternalConfig, transactionUsecase contracts.TransactionUsecase) *TransactionController {
	onceTransactionController.Do(func() {
		instance := &TransactionController{
			Log:                logger,
			InternalConfig:     internalConfig,
			TransactionUsecase: transactionUsecase,
		}
		transactionControllerInstance = instance
	})
	return transactionControllerInstance
}

func (ctrl *TransactionController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	patientID := utils.GetPatientID(r.Context())

	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	result, err := ctrl.TransactionUsecase.FindAllByPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessListTransactions, result)
}
