package patientflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeActivityPrefersNestedEntity(t *testing.T) {
	raw := RawActivity{
		ID:     "a1",
		Status: "accepted",
		Amount: 150,
		Date:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Provider: &RawParty{
			ID:        "prov-1",
			Name:      "City Lab",
			AvatarURL: "https://cdn.example.com/citylab.png",
		},
		ProviderName: "Stale Denormalized Name",
	}

	view := NormalizeActivity(raw, ActivityLabOrder)

	assert.Equal(t, "a1", view.ID)
	assert.Equal(t, ActivityLabOrder, view.Kind)
	assert.Equal(t, "City Lab", view.CounterpartyName)
	assert.Equal(t, "https://cdn.example.com/citylab.png", view.CounterpartyAvatar)
	assert.Equal(t, 150.0, view.Amount)
}

func TestNormalizeActivityFallsBackToDenormalizedFields(t *testing.T) {
	raw := RawActivity{
		ID:           "a2",
		Status:       "pending",
		TotalAmount:  90,
		CreatedAt:    time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		ProviderName: "Green Pharmacy",
	}

	view := NormalizeActivity(raw, ActivityPharmacyOrder)

	assert.Equal(t, "Green Pharmacy", view.CounterpartyName)
	assert.Equal(t, 90.0, view.Amount)
	assert.Equal(t, raw.CreatedAt, view.Date)
	assert.Contains(t, view.CounterpartyAvatar, "name=Green+Pharmacy")
}

func TestNormalizeActivityDegradesToPlaceholders(t *testing.T) {
	view := NormalizeActivity(RawActivity{}, ActivityAppointment)

	assert.Equal(t, "Unknown Patient", view.CounterpartyName)
	assert.Equal(t, "Not provided", view.StatusLabel)
	assert.NotEmpty(t, view.CounterpartyAvatar)
	assert.Zero(t, view.Amount)
}

func TestStatusLabel(t *testing.T) {
	testCases := []struct {
		status   string
		expected string
	}{
		{"pending", "Pending"},
		{"sample_collected", "Sample Collected"},
		{"reports_being_generated", "Reports Being Generated"},
		{"completed", "Request Accepted"},
		{"some_future_status", "Some Future Status"},
		{"échantillon_reçu", "Échantillon Reçu"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, StatusLabel(tc.status), tc.status)
	}
}

func TestNormalizeActivityUnknownStatusPassesThrough(t *testing.T) {
	view := NormalizeActivity(RawActivity{Status: "quantum_flux"}, ActivityLabOrder)

	assert.Equal(t, "quantum_flux", view.Status)
	assert.Equal(t, "Quantum Flux", view.StatusLabel)
}
