package patientflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSynchronizer(api *fakeAPI) (*Synchronizer, chan time.Time, *Store) {
	store := NewStore()
	ticks := make(chan time.Time, 16)
	synchronizer := NewSynchronizer(api, store, nil)
	synchronizer.newTicker = func(interval time.Duration) (<-chan time.Time, func()) {
		return ticks, func() {}
	}
	return synchronizer, ticks, store
}

func waitForFetch(t *testing.T, api *fakeAPI) {
	t.Helper()
	select {
	case <-api.listCh:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a fetch")
	}
}

func TestSynchronizerFetchesImmediatelyAndPerTick(t *testing.T) {
	api := &fakeAPI{
		requests: []Request{{ID: "r1", Type: "lab", Status: StatusPending}},
		listCh:   make(chan struct{}, 16),
	}
	synchronizer, ticks, store := newTestSynchronizer(api)

	synchronizer.Start(context.Background())
	defer synchronizer.Stop()

	waitForFetch(t, api)

	ticks <- time.Now()
	waitForFetch(t, api)
	ticks <- time.Now()
	waitForFetch(t, api)

	listCalls, _, _, _ := api.counts()
	assert.Equal(t, 3, listCalls)

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "r1", snapshot[0].ID)
}

func TestSynchronizerStopClearsTicker(t *testing.T) {
	api := &fakeAPI{listCh: make(chan struct{}, 16)}
	synchronizer, ticks, _ := newTestSynchronizer(api)

	synchronizer.Start(context.Background())
	waitForFetch(t, api)
	synchronizer.Stop()

	listCallsAtStop, _, _, _ := api.counts()

	// several intervals elapse after teardown; none may fetch
	for i := 0; i < 5; i++ {
		ticks <- time.Now()
	}

	listCalls, _, _, _ := api.counts()
	assert.Equal(t, listCallsAtStop, listCalls)
}

func TestSynchronizerStartIsIdempotentAndRestartable(t *testing.T) {
	api := &fakeAPI{listCh: make(chan struct{}, 16)}
	synchronizer, _, _ := newTestSynchronizer(api)

	synchronizer.Start(context.Background())
	synchronizer.Start(context.Background())
	waitForFetch(t, api)
	synchronizer.Stop()

	synchronizer.Start(context.Background())
	waitForFetch(t, api)
	synchronizer.Stop()

	listCalls, _, _, _ := api.counts()
	assert.Equal(t, 2, listCalls)
}

func TestSynchronizerSuppressesNetworkErrors(t *testing.T) {
	api := &fakeAPI{
		listErr: &NetworkError{Op: "GET /requests", Err: context.DeadlineExceeded},
		listCh:  make(chan struct{}, 16),
	}
	synchronizer, ticks, store := newTestSynchronizer(api)

	synchronizer.Start(context.Background())
	defer synchronizer.Stop()

	waitForFetch(t, api)
	ticks <- time.Now()
	waitForFetch(t, api)

	// failed polls leave the store untouched
	assert.Empty(t, store.Snapshot())
}

func TestStoreLastWriteWins(t *testing.T) {
	store := NewStore()

	older := store.BeginFetch()
	newer := store.BeginFetch()

	applied := store.ApplyFetch(newer, []RequestView{{ID: "fresh"}})
	assert.True(t, applied)

	// the older in-flight fetch completes late and is dropped
	applied = store.ApplyFetch(older, []RequestView{{ID: "stale"}})
	assert.False(t, applied)

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "fresh", snapshot[0].ID)
}

func TestStoreFullFetchSupersedesOptimisticPatch(t *testing.T) {
	store := NewStore()

	first := store.BeginFetch()
	store.ApplyFetch(first, []RequestView{{ID: "r1"}, {ID: "r2"}})

	store.Remove("r2")
	require.Len(t, store.Snapshot(), 1)

	second := store.BeginFetch()
	store.ApplyFetch(second, []RequestView{{ID: "r1"}, {ID: "r2"}})

	// the authoritative fetch wins over the optimistic removal
	assert.Len(t, store.Snapshot(), 2)
}
