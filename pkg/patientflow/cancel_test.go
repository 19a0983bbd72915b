package patientflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysConfirm(ctx context.Context, view RequestView) (bool, error) { return true, nil }

func TestCancellable(t *testing.T) {
	testCases := []struct {
		name     string
		view     RequestView
		expected bool
	}{
		{"pending", RequestView{Status: StatusPending}, true},
		{"accepted", RequestView{Status: StatusAccepted}, true},
		{"confirmed without orders", RequestView{Status: StatusConfirmed}, true},
		{"confirmed with provider order", RequestView{Status: StatusConfirmed, Orders: []Order{{ID: "o1", Status: "accepted"}}}, false},
		{"cancelled", RequestView{Status: StatusCancelled}, false},
		{"completed", RequestView{Status: Status("completed")}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Cancellable(tc.view))
		})
	}
}

func TestCancelRejectedLocallyBeforeNetworkCall(t *testing.T) {
	api := &fakeAPI{}
	coordinator := NewCancellationCoordinator(api, NewStore(), alwaysConfirm, nil)

	_, err := coordinator.Cancel(context.Background(), RequestView{ID: "r1", Status: Status("completed")}, "changed mind")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, _, _, cancelCalls := api.counts()
	assert.Zero(t, cancelCalls)
}

func TestCancelRequiresReason(t *testing.T) {
	api := &fakeAPI{}
	coordinator := NewCancellationCoordinator(api, NewStore(), alwaysConfirm, nil)

	_, err := coordinator.Cancel(context.Background(), RequestView{ID: "r1", Status: StatusPending}, "   ")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, _, _, cancelCalls := api.counts()
	assert.Zero(t, cancelCalls)
}

func TestCancelDeclinedConfirmationAborts(t *testing.T) {
	api := &fakeAPI{}
	decline := func(ctx context.Context, view RequestView) (bool, error) { return false, nil }
	coordinator := NewCancellationCoordinator(api, NewStore(), decline, nil)

	cancelled, err := coordinator.Cancel(context.Background(), RequestView{ID: "r1", Status: StatusPending}, "changed mind")

	assert.NoError(t, err)
	assert.Nil(t, cancelled)

	_, _, _, cancelCalls := api.counts()
	assert.Zero(t, cancelCalls)
}

func TestCancelSuccessRemovesFromLocalView(t *testing.T) {
	store := NewStore()
	generation := store.BeginFetch()
	store.ApplyFetch(generation, []RequestView{
		{ID: "r1", Status: StatusPending},
		{ID: "r2", Status: StatusPending},
	})

	api := &fakeAPI{
		cancelResp: &Request{ID: "r2", Status: StatusCancelled, CancelReason: "changed mind"},
	}
	coordinator := NewCancellationCoordinator(api, store, alwaysConfirm, nil)

	cancelled, err := coordinator.Cancel(context.Background(), RequestView{ID: "r2", Status: StatusPending}, "changed mind")

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, "changed mind", api.lastCancelReason)

	// removed immediately, without waiting for the next poll tick
	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "r1", snapshot[0].ID)
}

func TestCancelServerRejectionSurfacedVerbatim(t *testing.T) {
	store := NewStore()
	generation := store.BeginFetch()
	store.ApplyFetch(generation, []RequestView{{ID: "r1", Status: StatusAccepted}})

	api := &fakeAPI{
		cancelErr: &CancellationRejectedError{StatusCode: 409, Reason: "This request can no longer be cancelled"},
	}
	coordinator := NewCancellationCoordinator(api, store, alwaysConfirm, nil)

	_, err := coordinator.Cancel(context.Background(), RequestView{ID: "r1", Status: StatusAccepted}, "changed mind")

	var rejectedErr *CancellationRejectedError
	require.ErrorAs(t, err, &rejectedErr)
	assert.Equal(t, "This request can no longer be cancelled", rejectedErr.Error())

	// local state untouched
	assert.Len(t, store.Snapshot(), 1)
}
