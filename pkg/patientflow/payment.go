package patientflow

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// AttemptState is where a single payment attempt currently stands.
type AttemptState string

const (
	StateIdle         AttemptState = "idle"
	StateOrderCreated AttemptState = "order_created"
	StateGatewayOpen  AttemptState = "gateway_open"
	StateVerifying    AttemptState = "verifying"
	StateConfirmed    AttemptState = "confirmed"
	StateFailed       AttemptState = "failed"
)

// CheckoutOptions is the option set handed to the external checkout. Amount
// is in minor currency units, taken from the order-creation response.
type CheckoutOptions struct {
	Key         string
	Amount      int64
	Currency    string
	OrderID     string
	Name        string
	Description string
	Prefill     CheckoutPrefill
	Theme       CheckoutTheme
}

type CheckoutPrefill struct {
	Name    string
	Email   string
	Contact string
}

type CheckoutTheme struct {
	Color string
}

// CheckoutGateway opens the external payment UI. Open blocks until the user
// acts: a result on success, ErrCheckoutDismissed when the user closes the
// checkout, any other error for a gateway fault. There is no programmatic
// cancel.
type CheckoutGateway interface {
	Open(ctx context.Context, options CheckoutOptions) (*PaymentConfirmation, error)
}

// PaymentOrchestrator runs the per-attempt state machine
// idle → order_created → gateway_open → verifying → confirmed | failed.
type PaymentOrchestrator struct {
	api     API
	gateway CheckoutGateway
	log     *zap.Logger

	// OnTransition, when set, observes every state change of an attempt.
	OnTransition func(requestID string, state AttemptState)

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewPaymentOrchestrator(api API, gateway CheckoutGateway, logger *zap.Logger) *PaymentOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentOrchestrator{
		api:      api,
		gateway:  gateway,
		log:      logger,
		inFlight: make(map[string]bool),
	}
}

// InFlight reports whether a payment attempt for the request is active,
// which is what disables the Pay action in a consumer.
func (o *PaymentOrchestrator) InFlight(requestID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight[requestID]
}

// Pay runs one full payment attempt for the request. A second Pay for the
// same request while one is active is rejected without any network call.
// Dismissing the checkout returns (nil, nil): back to idle, nothing mutated.
// On success it returns the server's authoritative request state.
func (o *PaymentOrchestrator) Pay(ctx context.Context, view RequestView) (*Request, error) {
	o.mu.Lock()
	if o.inFlight[view.ID] {
		o.mu.Unlock()
		return nil, &ValidationError{Message: "payment already in progress for this request"}
	}
	o.inFlight[view.ID] = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		delete(o.inFlight, view.ID)
		o.mu.Unlock()
	}()

	o.transition(view.ID, StateIdle)

	order, err := o.api.CreatePaymentOrder(ctx, view.ID)
	if err != nil {
		o.transition(view.ID, StateFailed)
		o.log.Warn("payment order creation rejected",
			zap.String("request_id", view.ID),
			zap.Error(err),
		)
		return nil, err
	}
	o.transition(view.ID, StateOrderCreated)

	options := CheckoutOptions{
		Key:         order.GatewayKeyID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		OrderID:     order.OrderID,
		Name:        "Healiinn",
		Description: checkoutDescription(view.Kind),
	}

	o.transition(view.ID, StateGatewayOpen)
	confirmation, err := o.gateway.Open(ctx, options)
	if err != nil {
		if errors.Is(err, ErrCheckoutDismissed) {
			o.transition(view.ID, StateIdle)
			return nil, nil
		}
		o.transition(view.ID, StateFailed)
		return nil, &NetworkError{Op: "checkout", Err: err}
	}

	o.transition(view.ID, StateVerifying)
	confirmed, err := o.api.ConfirmPayment(ctx, view.ID, *confirmation)
	if err != nil {
		o.transition(view.ID, StateFailed)
		o.log.Warn("payment verification failed",
			zap.String("request_id", view.ID),
			zap.String("gateway_order_id", confirmation.OrderID),
			zap.Error(err),
		)
		return nil, err
	}

	o.transition(view.ID, StateConfirmed)
	o.log.Info("payment confirmed",
		zap.String("request_id", view.ID),
		zap.String("gateway_order_id", confirmation.OrderID),
	)

	return confirmed, nil
}

func (o *PaymentOrchestrator) transition(requestID string, state AttemptState) {
	if o.OnTransition != nil {
		o.OnTransition(requestID, state)
	}
}

func checkoutDescription(kind Kind) string {
	switch kind {
	case KindLab:
		return "Lab tests"
	case KindPharmacy:
		return "Medicine order"
	default:
		return "Service request"
	}
}
