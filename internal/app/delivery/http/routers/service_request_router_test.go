package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/delivery/http/controllers"
	"healiinn-service/internal/app/delivery/http/middlewares"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/dto/requests"
	"healiinn-service/internal/pkg/dto/responses"
	"healiinn-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockServiceRequestUsecase struct {
	mock.Mock
}

func (m *MockServiceRequestUsecase) FindAllByPatient(ctx context.Context, patientID string) ([]responses.ServiceRequest, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestUsecase) FindByID(ctx context.Context, patientID, requestID string) (*responses.ServiceRequest, error) {
	args := m.Called(ctx, patientID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestUsecase) Create(ctx context.Context, patientID string, request *requests.CreateServiceRequest) (*responses.ServiceRequest, error) {
	args := m.Called(ctx, patientID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestUsecase) Cancel(ctx context.Context, patientID, requestID string, request *requests.CancelServiceRequest) (*responses.ServiceRequest, error) {
	args := m.Called(ctx, patientID, requestID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ServiceRequest), args.Error(1)
}

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) CreatePaymentOrder(ctx context.Context, patientID, requestID string) (*responses.PaymentOrder, error) {
	args := m.Called(ctx, patientID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentOrder), args.Error(1)
}

func (m *MockPaymentUsecase) ConfirmPayment(ctx context.Context, patientID, requestID string, request *requests.ConfirmPayment) (*responses.ServiceRequest, error) {
	args := m.Called(ctx, patientID, requestID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ServiceRequest), args.Error(1)
}

func (m *MockPaymentUsecase) GatewayCallback(ctx context.Context, rawBody []byte, signature string) error {
	args := m.Called(ctx, rawBody, signature)
	return args.Error(0)
}

const testJWTSecret = "unit-test-secret"

func patientToken(t *testing.T, patientID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"patient_id": patientID})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func decodeEnvelope(t *testing.T, resp *http.Response) responses.ResponseDTO {
	t.Helper()
	var envelope responses.ResponseDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestServiceRequestRoutes(t *testing.T) {
	internalConfig := &config.InternalConfig{
		App: config.App{RequestTimeoutInSeconds: 5},
		JWT: config.AppJWT{Secret: testJWTSecret},
	}
	log := zap.NewNop()

	serviceRequestUsecase := new(MockServiceRequestUsecase)
	paymentUsecase := new(MockPaymentUsecase)

	serviceRequestController := controllers.NewServiceRequestController(log, internalConfig, serviceRequestUsecase)
	paymentController := controllers.NewPaymentController(log, internalConfig, paymentUsecase)
	mws := &middlewares.Middlewares{Log: log, InternalConfig: internalConfig}

	router := chi.NewRouter()
	router.Use(mws.RequestIDMiddleware)
	router.Route("/requests", func(r chi.Router) {
		attachServiceRequestRoutes(r, mws, serviceRequestController, paymentController)
	})

	server := httptest.NewServer(router)
	defer server.Close()

	token := patientToken(t, "pat1")

	t.Run("rejects missing token", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/requests")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, constvars.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects forged token", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"patient_id": "pat1"})
		signed, err := forged.SignedString([]byte("wrong-secret"))
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, server.URL+"/requests", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signed)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, constvars.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("lists requests for token patient", func(t *testing.T) {
		serviceRequestUsecase.On("FindAllByPatient", mock.Anything, "pat1").Return([]responses.ServiceRequest{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, server.URL+"/requests", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, constvars.StatusOK, resp.StatusCode)
		envelope := decodeEnvelope(t, resp)
		assert.True(t, envelope.Success)
		serviceRequestUsecase.AssertExpectations(t)
	})

	t.Run("propagates cancellation rejection status", func(t *testing.T) {
		serviceRequestUsecase.On("Cancel", mock.Anything, "pat1", "r1", mock.Anything).
			Return(nil, exceptions.ErrCancellationRejected(nil, constvars.ErrDevCancellationFulfilmentBegun)).Once()

		body := bytes.NewBufferString(`{"reason": "waited too long"}`)
		req, _ := http.NewRequest(http.MethodPost, server.URL+"/requests/r1/cancel", body)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, constvars.StatusConflict, resp.StatusCode)
		envelope := decodeEnvelope(t, resp)
		assert.False(t, envelope.Success)
	})

	t.Run("creates payment order", func(t *testing.T) {
		paymentUsecase.On("CreatePaymentOrder", mock.Anything, "pat1", "r1").
			Return(&responses.PaymentOrder{OrderID: "order_g1", Amount: 30000, Currency: "INR", GatewayKeyID: "key_test"}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, server.URL+"/requests/r1/payment-order", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, constvars.StatusCreated, resp.StatusCode)
		envelope := decodeEnvelope(t, resp)
		assert.True(t, envelope.Success)
		paymentUsecase.AssertExpectations(t)
	})

	t.Run("confirms payment", func(t *testing.T) {
		paymentUsecase.On("ConfirmPayment", mock.Anything, "pat1", "r1", mock.MatchedBy(func(request *requests.ConfirmPayment) bool {
			return request.PaymentID == "pay_g1" && request.OrderID == "order_g1" && request.Signature == "sig1"
		})).Return(&responses.ServiceRequest{}, nil).Once()

		body := bytes.NewBufferString(`{"paymentId": "pay_g1", "orderId": "order_g1", "signature": "sig1"}`)
		req, _ := http.NewRequest(http.MethodPost, server.URL+"/requests/r1/payment-confirm", body)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, constvars.StatusOK, resp.StatusCode)
		paymentUsecase.AssertExpectations(t)
	})
}
