package patientflow

import (
	"context"
	"sync"
)

// fakeAPI is an in-memory API double shared across the engine tests.
type fakeAPI struct {
	mu sync.Mutex

	requests  []Request
	listErr   error
	listCalls int
	listCh    chan struct{}

	orderResp  *PaymentOrder
	orderErr   error
	orderCalls int

	confirmResp  *Request
	confirmErr   error
	confirmCalls int
	lastConfirm  PaymentConfirmation

	cancelResp       *Request
	cancelErr        error
	cancelCalls      int
	lastCancelReason string
}

func (f *fakeAPI) ListRequests(ctx context.Context) ([]Request, error) {
	f.mu.Lock()
	f.listCalls++
	requests, err, notify := f.requests, f.listErr, f.listCh
	f.mu.Unlock()
	if notify != nil {
		notify <- struct{}{}
	}
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (f *fakeAPI) ListOrders(ctx context.Context) ([]Order, error) {
	return nil, nil
}

func (f *fakeAPI) CreatePaymentOrder(ctx context.Context, requestID string) (*PaymentOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orderCalls++
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.orderResp, nil
}

func (f *fakeAPI) ConfirmPayment(ctx context.Context, requestID string, confirmation PaymentConfirmation) (*Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmCalls++
	f.lastConfirm = confirmation
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return f.confirmResp, nil
}

func (f *fakeAPI) CancelRequest(ctx context.Context, requestID, reason string) (*Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelCalls++
	f.lastCancelReason = reason
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return f.cancelResp, nil
}

func (f *fakeAPI) counts() (list, order, confirm, cancel int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.orderCalls, f.confirmCalls, f.cancelCalls
}

// fakeGateway scripts the checkout outcome. When block is set, Open waits on
// it before returning, which lets tests hold an attempt in flight.
type fakeGateway struct {
	mu     sync.Mutex
	result *PaymentConfirmation
	err    error
	opened []CheckoutOptions
	block  chan struct{}
}

func (g *fakeGateway) Open(ctx context.Context, options CheckoutOptions) (*PaymentConfirmation, error) {
	g.mu.Lock()
	g.opened = append(g.opened, options)
	block := g.block
	g.mu.Unlock()
	if block != nil {
		<-block
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func (g *fakeGateway) openedOptions() []CheckoutOptions {
	g.mu.Lock()
	defer g.mu.Unlock()
	options := make([]CheckoutOptions, len(g.opened))
	copy(options, g.opened)
	return options
}
