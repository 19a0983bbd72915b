package patientflow

import (
	"sort"
	"time"
)

// ItemGroup is one provider's slice of a priced response, in order of first
// appearance.
type ItemGroup struct {
	ProviderID   string
	ProviderName string
	Subtotal     float64
	Medicines    []MedicineItem
	Tests        []TestItem
}

// RequestView is the derived, display-ready form of a request.
type RequestView struct {
	ID              string
	Kind            Kind
	Status          Status
	StatusLabel     string
	VisitType       string
	TotalAmount     float64
	AwaitingPricing bool
	Groups          []ItemGroup
	CancelReason    string
	Date            time.Time
	Orders          []Order
}

// NormalizeKind maps the source aliases onto the two canonical kinds.
func NormalizeKind(raw string) (Kind, bool) {
	switch raw {
	case "lab", "book_test_visit":
		return KindLab, true
	case "pharmacy", "order_medicine":
		return KindPharmacy, true
	default:
		return "", false
	}
}

// AggregateRequests derives the patient's request list: kind normalization,
// line-item grouping, effective status, newest first. It never fails; a
// request without pricing renders as awaiting pricing, and an unknown kind
// passes through as-is.
func AggregateRequests(requests []Request) []RequestView {
	views := make([]RequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, buildView(request))
	}

	// stable keeps insertion order on equal timestamps
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date.After(views[j].Date)
	})

	return views
}

func buildView(request Request) RequestView {
	kind, ok := NormalizeKind(request.Type)
	if !ok {
		kind = Kind(request.Type)
	}

	effective := EffectiveStatus(request, request.Orders)

	view := RequestView{
		ID:           request.ID,
		Kind:         kind,
		Status:       effective,
		StatusLabel:  StatusLabel(string(effective)),
		VisitType:    request.VisitType,
		CancelReason: request.CancelReason,
		Date:         request.CreatedAt,
		Orders:       request.Orders,
	}

	if request.AdminResponse == nil {
		view.AwaitingPricing = true
		return view
	}

	view.TotalAmount = request.AdminResponse.TotalAmount
	view.Groups = GroupLineItems(request.AdminResponse)
	view.AwaitingPricing = len(view.Groups) == 0

	return view
}

// GroupLineItems groups medicines by pharmacy and tests by lab, keeping the
// order of first appearance. Medicine subtotals weigh price by quantity;
// test subtotals are a plain sum.
func GroupLineItems(adminResponse *AdminResponse) []ItemGroup {
	if adminResponse == nil {
		return nil
	}

	var groups []ItemGroup
	index := make(map[string]int)

	groupFor := func(providerID, providerName string) *ItemGroup {
		if i, ok := index[providerID]; ok {
			return &groups[i]
		}
		groups = append(groups, ItemGroup{ProviderID: providerID, ProviderName: providerName})
		index[providerID] = len(groups) - 1
		return &groups[len(groups)-1]
	}

	for _, medicine := range adminResponse.Medicines {
		group := groupFor(medicine.PharmacyID, medicine.PharmacyName)
		group.Medicines = append(group.Medicines, medicine)
		group.Subtotal += medicine.Price * float64(medicine.Quantity)
	}

	for _, test := range adminResponse.Tests {
		group := groupFor(test.LabID, test.LabName)
		group.Tests = append(group.Tests, test)
		group.Subtotal += test.Price
	}

	return groups
}
