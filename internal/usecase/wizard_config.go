package usecase

import (
	"time"

	"convoyage/internal/domain/form"
)

// WizardKind selects which creation flow a session runs. Each kind has its
// own step layout, required-field map, and draft slot.

type WizardKind string

const (
	WizardKindMission WizardKind = "mission"
	WizardKindInvoice WizardKind = "invoice"
)

// WizardConfig is the static shape of one wizard kind.
type WizardConfig struct {
	Kind       WizardKind
	TotalSteps int
	Required   form.RequiredMap

	DraftDebounce time.Duration
	DraftTTL      time.Duration
}

const (
	defaultDraftDebounce = 400 * time.Millisecond
	defaultDraftTTL      = 7 * 24 * time.Hour
)

// MissionWizardConfig lays out the five-step mission flow:
// client, vehicle, departure, arrival, options/notes.
func MissionWizardConfig() WizardConfig {
	return WizardConfig{
		Kind:       WizardKindMission,
		TotalSteps: 5,
		Required: form.RequiredMap{
			1: {"client.name", "client.email", "client.phone"},
			2: {"vehicle.brand", "vehicle.model", "vehicle.licensePlate"},
			3: {"departure.address.street", "departure.address.city", "departure.date"},
			4: {"arrival.address.street", "arrival.address.city", "arrival.date"},
			// step 5 (options + notes) has no required fields
		},
		DraftDebounce: defaultDraftDebounce,
		DraftTTL:      defaultDraftTTL,
	}
}

// InvoiceWizardConfig lays out the three-step billing flow:
// client, line items, notes/review. Line-item presence is enforced at
// submit, not by a path rule.
func InvoiceWizardConfig() WizardConfig {
	return WizardConfig{
		Kind:       WizardKindInvoice,
		TotalSteps: 3,
		Required: form.RequiredMap{
			1: {"client.name", "client.email"},
		},
		DraftDebounce: defaultDraftDebounce,
		DraftTTL:      defaultDraftTTL,
	}
}

func configFor(kind WizardKind) (WizardConfig, bool) {
	switch kind {
	case WizardKindMission:
		return MissionWizardConfig(), true
	case WizardKindInvoice:
		return InvoiceWizardConfig(), true
	default:
		return WizardConfig{}, false
	}
}

// draftKey is the fixed storage slot of a wizard kind for one owner.
func draftKey(kind WizardKind, ownerID string) string {
	return string(kind) + ":" + ownerID
}
