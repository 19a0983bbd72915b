package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestKind(t *testing.T) {
	tests := []struct {
		raw  string
		want RequestKind
		ok   bool
	}{
		{"lab", RequestKindLab, true},
		{"book_test_visit", RequestKindLab, true},
		{"pharmacy", RequestKindPharmacy, true},
		{"order_medicine", RequestKindPharmacy, true},
		{"", "", false},
		{"massage", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeRequestKind(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasPricedItems(t *testing.T) {
	var nilResponse *AdminResponse
	assert.False(t, nilResponse.HasPricedItems())

	assert.False(t, (&AdminResponse{TotalAmount: 100}).HasPricedItems())

	assert.False(t, (&AdminResponse{
		Tests: []TestItem{{LabID: "L1", TestName: "CBC", Price: 300}},
	}).HasPricedItems())

	assert.True(t, (&AdminResponse{
		Tests:       []TestItem{{LabID: "L1", TestName: "CBC", Price: 300}},
		TotalAmount: 300,
	}).HasPricedItems())

	assert.True(t, (&AdminResponse{
		Medicines:   []MedicineItem{{PharmacyID: "A", Price: 10, Quantity: 2}},
		TotalAmount: 20,
	}).HasPricedItems())
}
