package patientflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatusNoOrders(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusAccepted, StatusConfirmed, StatusCancelled} {
		assert.Equal(t, status, EffectiveStatus(Request{Status: status}, nil), string(status))
	}
}

func TestEffectiveStatusLatestOrderWins(t *testing.T) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	orders := []Order{
		{ID: "o1", Status: "accepted", CreatedAt: base},
		{ID: "o2", Status: "sample_collected", CreatedAt: base.Add(time.Hour)},
	}

	got := EffectiveStatus(Request{Status: StatusConfirmed}, orders)

	assert.Equal(t, Status("sample_collected"), got)
}

func TestEffectiveStatusPaidRatchet(t *testing.T) {
	// A confirmed request never regresses to accepted just because the
	// newest order is still at accepted.
	orders := []Order{{ID: "o1", Status: "accepted", CreatedAt: time.Now()}}

	got := EffectiveStatus(Request{Status: StatusConfirmed}, orders)

	assert.Equal(t, StatusConfirmed, got)
}

func TestEffectiveStatusUnconfirmedFollowsOrder(t *testing.T) {
	orders := []Order{{ID: "o1", Status: "accepted", CreatedAt: time.Now()}}

	got := EffectiveStatus(Request{Status: StatusAccepted}, orders)

	assert.Equal(t, StatusAccepted, got)
}

func TestEffectiveStatusPicksMostRecentOrder(t *testing.T) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	orders := []Order{
		{ID: "o2", Status: "delivered", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "o1", Status: "packed", CreatedAt: base},
	}

	got := EffectiveStatus(Request{Status: StatusConfirmed}, orders)

	assert.Equal(t, Status("delivered"), got)
}
