package patientflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, code int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func TestClientListRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/requests", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, true, "ok", []map[string]interface{}{
			{"id": "r1", "type": "book_test_visit", "status": "pending"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	requests, err := client.ListRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "r1", requests[0].ID)
	assert.Equal(t, "book_test_visit", requests[0].Type)
}

func TestClientListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		writeEnvelope(w, http.StatusOK, true, "ok", []map[string]interface{}{
			{"id": "o1", "requestId": "r1", "status": "sample_collected"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	orders, err := client.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "r1", orders[0].RequestID)
	assert.Equal(t, "sample_collected", orders[0].Status)
}

func TestClientCreatePaymentOrderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/requests/r1/payment-order", r.URL.Path)
		writeEnvelope(w, http.StatusUnprocessableEntity, false, "This request is not ready for payment yet", nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	_, err := client.CreatePaymentOrder(context.Background(), "r1")

	var orderErr *OrderCreationError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, http.StatusUnprocessableEntity, orderErr.StatusCode)
	assert.Contains(t, orderErr.Message, "not ready for payment")
}

func TestClientConfirmPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/requests/r1/payment-confirm", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "p1", body["paymentId"])
		assert.Equal(t, "o1", body["orderId"])
		assert.Equal(t, "s1", body["signature"])

		writeEnvelope(w, http.StatusOK, true, "Payment verified successfully", map[string]interface{}{
			"id": "r1", "status": "confirmed",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	confirmed, err := client.ConfirmPayment(context.Background(), "r1", PaymentConfirmation{
		PaymentID: "p1", OrderID: "o1", Signature: "s1",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmed.Status)
}

func TestClientConfirmPaymentVerificationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, false, "Payment verification failed, no amount has been captured", nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	_, err := client.ConfirmPayment(context.Background(), "r1", PaymentConfirmation{
		PaymentID: "p1", OrderID: "o1", Signature: "bad",
	})

	var verifyErr *PaymentVerificationError
	require.ErrorAs(t, err, &verifyErr)
	assert.Equal(t, http.StatusBadRequest, verifyErr.StatusCode)
}

func TestClientCancelRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "changed mind", body["reason"])

		writeEnvelope(w, http.StatusConflict, false, "This request can no longer be cancelled", nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	_, err := client.CancelRequest(context.Background(), "r1", "changed mind")

	var rejectedErr *CancellationRejectedError
	require.ErrorAs(t, err, &rejectedErr)
	assert.Equal(t, "This request can no longer be cancelled", rejectedErr.Reason)
}

func TestClientConnectionFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "token-123")
	_, err := client.ListRequests(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}
