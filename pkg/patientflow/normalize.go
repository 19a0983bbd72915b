package patientflow

import (
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ActivityKind tags the heterogeneous backend records that feed the history
// views.
type ActivityKind string

const (
	ActivityAppointment   ActivityKind = "appointment"
	ActivityLabOrder      ActivityKind = "lab_order"
	ActivityPharmacyOrder ActivityKind = "pharmacy_order"
)

const (
	unknownPatientName = "Unknown Patient"
	notProvided        = "Not provided"

	avatarServiceURL = "https://ui-avatars.com/api/"
)

// RawParty is a populated nested entity reference.
type RawParty struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// RawActivity is a backend record before normalization. Any field may be
// absent; nested entities may or may not be populated alongside the
// denormalized top-level copies.
type RawActivity struct {
	ID          string    `json:"id,omitempty"`
	Status      string    `json:"status,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	TotalAmount float64   `json:"totalAmount,omitempty"`
	Price       float64   `json:"price,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`

	Provider     *RawParty `json:"provider,omitempty"`
	Patient      *RawParty `json:"patient,omitempty"`
	ProviderName string    `json:"providerName,omitempty"`
	PatientName  string    `json:"patientName,omitempty"`
}

// ActivityView is the uniform view model. Every field is guaranteed present.
type ActivityView struct {
	ID                 string
	Kind               ActivityKind
	Status             string
	StatusLabel        string
	Amount             float64
	Date               time.Time
	CounterpartyName   string
	CounterpartyAvatar string
}

// displayStatusOverrides relabels statuses for display only; the underlying
// state is not renamed. "completed" rendering as "Request Accepted" matches
// the product copy for finished requests.
var displayStatusOverrides = map[string]string{
	"completed": "Request Accepted",
}

// NormalizeActivity converts one raw record into the uniform view model.
// Field precedence, per field: nested populated entity, then top-level
// denormalized copy, then a generated placeholder. It never fails; malformed
// input degrades to defaults.
func NormalizeActivity(raw RawActivity, kind ActivityKind) ActivityView {
	view := ActivityView{
		ID:     raw.ID,
		Kind:   kind,
		Status: raw.Status,
	}

	view.StatusLabel = StatusLabel(raw.Status)

	// amount: explicit amount, then the priced total, then unit price
	switch {
	case raw.Amount > 0:
		view.Amount = raw.Amount
	case raw.TotalAmount > 0:
		view.Amount = raw.TotalAmount
	default:
		view.Amount = raw.Price
	}

	if !raw.Date.IsZero() {
		view.Date = raw.Date
	} else {
		view.Date = raw.CreatedAt
	}

	view.CounterpartyName = counterpartyName(raw)
	view.CounterpartyAvatar = counterpartyAvatar(raw, view.CounterpartyName)

	return view
}

// StatusLabel renders a status for display: override table first, otherwise
// title-cased with underscores as spaces. Unknown statuses pass through.
func StatusLabel(status string) string {
	if status == "" {
		return notProvided
	}
	if label, ok := displayStatusOverrides[status]; ok {
		return label
	}
	words := strings.Fields(strings.ReplaceAll(status, "_", " "))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}

func counterpartyName(raw RawActivity) string {
	if raw.Provider != nil && raw.Provider.Name != "" {
		return raw.Provider.Name
	}
	if raw.ProviderName != "" {
		return raw.ProviderName
	}
	if raw.Patient != nil && raw.Patient.Name != "" {
		return raw.Patient.Name
	}
	if raw.PatientName != "" {
		return raw.PatientName
	}
	return unknownPatientName
}

func counterpartyAvatar(raw RawActivity, name string) string {
	if raw.Provider != nil && raw.Provider.AvatarURL != "" {
		return raw.Provider.AvatarURL
	}
	if raw.Patient != nil && raw.Patient.AvatarURL != "" {
		return raw.Patient.AvatarURL
	}
	return avatarServiceURL + "?name=" + url.QueryEscape(name)
}
