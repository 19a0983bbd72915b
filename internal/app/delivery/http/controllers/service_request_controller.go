package controllers

import (
	"context"
	"net/http"
	"strings"
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

// prescription uploads are small PDF or image files
const maxPrescriptionUploadBytes = 10 << 20

type ServiceRequestController struct {
	Log                   *zap.Logger
	InternalConfig        *config.InternalConfig
	ServiceRequestUsecase contracts.ServiceRequestUsecase
}

var (
	serviceRequestControllerInstance *ServiceRequestController
	onceServiceRequestController     sync.Once
)

func NewServiceRequestController(logger *zap.Logger, internalConfig *config.InternalConfig, serviceRequestUsecase contracts.ServiceRequestUsecase) *ServiceRequestController {
	onceServiceRequestController.Do(func() {
		instance := &ServiceRequestController{
			Log:                   logger,
			InternalConfig:        internalConfig,
			ServiceRequestUsecase: serviceRequestUsecase,
		}
		serviceRequestControllerInstance = instance
	})
	return serviceRequestControllerInstance
}

func (ctrl *ServiceRequestController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	patientID := utils.GetPatientID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.ServiceRequestUsecase.FindAllByPatient(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessListServiceRequests, result)
}

func (ctrl *ServiceRequestController) FindByID(w http.ResponseWriter, r *http.Request) {
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

	result, err := ctrl.ServiceRequestUsecase.FindByID(ctx, patientID, serviceRequestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetServiceRequest, result)
}

func (ctrl *ServiceRequestController) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	patientID := utils.GetPatientID(r.Context())

	request, err := ctrl.parseCreateRequest(r)
	if err != nil {
		ctrl.Log.Error("Failed to parse create request payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if request.PrescriptionFile != nil {
		defer request.PrescriptionFile.Close()
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.ServiceRequestUsecase.Create(ctx, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "service_request_created", requestID,
		zap.String(constvars.LoggingServiceRequestKey, result.ID),
		zap.String("kind", string(result.Kind)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessCreateRequest, result)
}

func (ctrl *ServiceRequestController) Cancel(w http.ResponseWriter, r *http.Request) {
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

	request := new(requests.CancelServiceRequest)
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

	result, err := ctrl.ServiceRequestUsecase.Cancel(ctx, patientID, serviceRequestID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "service_request_cancelled", requestID,
		zap.String(constvars.LoggingServiceRequestKey, result.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessCancelRequest, result)
}

// parseCreateRequest accepts either a multipart form carrying the
// prescription file or a plain JSON body without one.
func (ctrl *ServiceRequestController) parseCreateRequest(r *http.Request) (*requests.CreateServiceRequest, error) {
	contentType := r.Header.Get(constvars.HeaderContentType)

	if strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseMultipartForm(maxPrescriptionUploadBytes); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		request := &requests.CreateServiceRequest{
			Type:      r.FormValue("type"),
			VisitType: r.FormValue("visitType"),
		}
		file, fileHeader, err := r.FormFile("prescription")
		if err == nil {
			request.PrescriptionFile = file
			request.PrescriptionHeader = fileHeader
		} else if err != http.ErrMissingFile {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return request, nil
	}

	request := new(requests.CreateServiceRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return request, nil
}

func (ctrl *ServiceRequestController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}
