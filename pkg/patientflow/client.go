package patientflow

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// API is the server surface the engine consumes. Client implements it over
// HTTP; tests substitute fakes.
type API interface {
	ListRequests(ctx context.Context) ([]Request, error)
	ListOrders(ctx context.Context) ([]Order, error)
	CreatePaymentOrder(ctx context.Context, requestID string) (*PaymentOrder, error)
	ConfirmPayment(ctx context.Context, requestID string, confirmation PaymentConfirmation) (*Request, error)
	CancelRequest(ctx context.Context, requestID, reason string) (*Request, error)
}

// envelope is the server's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// apiError is a non-success envelope plus its HTTP status. Exported
// operations map it onto the error taxonomy.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string { return e.Message }

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *zap.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) { c.log = logger }
}

func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	client := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) ListRequests(ctx context.Context) ([]Request, error) {
	var result []Request
	if err := c.do(ctx, http.MethodGet, "/requests", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var result []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreatePaymentOrder(ctx context.Context, requestID string) (*PaymentOrder, error) {
	var result PaymentOrder
	err := c.do(ctx, http.MethodPost, "/requests/"+requestID+"/payment-order", nil, &result)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok {
			return nil, &OrderCreationError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
		}
		return nil, err
	}
	return &result, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, requestID string, confirmation PaymentConfirmation) (*Request, error) {
	var result Request
	err := c.do(ctx, http.MethodPost, "/requests/"+requestID+"/payment-confirm", confirmation, &result)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok {
			return nil, &PaymentVerificationError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
		}
		return nil, err
	}
	return &result, nil
}

func (c *Client) CancelRequest(ctx context.Context, requestID, reason string) (*Request, error) {
	body := map[string]string{"reason": reason}
	var result Request
	err := c.do(ctx, http.MethodPost, "/requests/"+requestID+"/cancel", body, &result)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok {
			return nil, &CancellationRejectedError{StatusCode: apiErr.StatusCode, Reason: apiErr.Message}
		}
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode >= 400 || !env.Success {
		c.log.Debug("api call rejected",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", env.Message),
		)
		return &apiError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &NetworkError{Op: method + " " + path, Err: err}
		}
	}
	return nil
}

func asAPIError(err error) (*apiError, bool) {
	apiErr, ok := err.(*apiError)
	return apiErr, ok
}
