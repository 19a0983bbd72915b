package payment_gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/dto/requests"
	"healiinn-service/internal/pkg/dto/responses"
	"healiinn-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type razorpayService struct {
	BaseUrl       string
	keyID         string
	keySecret     string
	webhookSecret string
	httpClient    *http.Client
	limiter       *rate.Limiter
}

func NewRazorpayService(internalConfig *config.InternalConfig) (contracts.PaymentGatewayService, error) {
	gw := internalConfig.PaymentGateway
	rps := gw.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &razorpayService{
		BaseUrl:       gw.BaseUrl,
		keyID:         gw.KeyID,
		keySecret:     gw.KeySecret,
		webhookSecret: gw.WebhookSecret,
		httpClient: &http.Client{
			Timeout: time.Duration(gw.RequestTimeoutInSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (s *razorpayService) KeyID() string {
	return s.keyID
}

func (s *razorpayService) CreateOrder(ctx context.Context, request *requests.GatewayOrder) (*responses.GatewayOrder, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrPaymentOrderCreate(err)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+constvars.RazorpayOrdersPath, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrPaymentOrderCreate(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.SetBasicAuth(s.keyID, s.keySecret)

	httpResponse, err := s.httpClient.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrPaymentOrderCreate(err)
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, exceptions.ErrPaymentOrderCreate(err)
	}

	if httpResponse.StatusCode != http.StatusOK {
		return nil, exceptions.ErrPaymentOrderCreate(fmt.Errorf("gateway returned status %d: %s", httpResponse.StatusCode, responseBody))
	}

	gatewayOrder := new(responses.GatewayOrder)
	if err := json.Unmarshal(responseBody, gatewayOrder); err != nil {
		return nil, exceptions.ErrPaymentOrderCreate(err)
	}

	return gatewayOrder, nil
}

// VerifyPaymentSignature recomputes the checkout signature the gateway
// documents as HMAC-SHA256(orderID + "|" + paymentID, keySecret).
func (s *razorpayService) VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	payload := gatewayOrderID + "|" + gatewayPaymentID
	return verifyHMAC([]byte(payload), signature, s.keySecret)
}

// VerifyWebhookSignature checks the signature header the gateway attaches to
// server-to-server callbacks, computed over the raw body with the dedicated
// webhook secret.
func (s *razorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	return verifyHMAC(body, signature, s.webhookSecret)
}

func verifyHMAC(payload []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
