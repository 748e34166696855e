package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"convoyage/internal/domain/billing"
	"convoyage/internal/domain/entities"
	"convoyage/internal/domain/form"

	"github.com/google/uuid"
)

// insertRecord maps the finalized form values into the target record and
// performs the single insert. The external store commits atomically; no
// partial writes happen here.
func (u *WizardUseCase) insertRecord(ctx context.Context, cfg WizardConfig, ownerID string, values form.Values) (SubmitResult, error) {
	switch cfg.Kind {
	case WizardKindMission:
		m, err := u.missionRepo.Create(ctx, mapMission(ownerID, values, u.now()))
		if err != nil {
			log.Printf("[wizard][usecase] mission insert failed owner=%s err=%v", ownerID, err)
			return SubmitResult{}, err
		}
		return SubmitResult{MissionID: m.ID}, nil

	case WizardKindInvoice:
		doc, err := u.buildDocument(ctx, ownerID, values)
		if err != nil {
			return SubmitResult{}, err
		}
		created, err := u.docRepo.Create(ctx, doc)
		if err != nil {
			log.Printf("[wizard][usecase] document insert failed owner=%s err=%v", ownerID, err)
			return SubmitResult{}, err
		}
		return SubmitResult{DocumentID: created.ID, DocumentNumber: created.Number}, nil

	default:
		return SubmitResult{}, ErrUnknownWizardKind
	}
}

func mapMission(ownerID string, v form.Values, now time.Time) entities.Mission {
	now = now.UTC()
	return entities.Mission{
		ID:      uuid.NewString(),
		OwnerID: ownerID,

		ClientName:  strings.TrimSpace(v.Client.Name),
		ClientEmail: strings.TrimSpace(v.Client.Email),
		ClientPhone: strings.TrimSpace(v.Client.Phone),

		VehicleBrand: strings.TrimSpace(v.Vehicle.Brand),
		VehicleModel: strings.TrimSpace(v.Vehicle.Model),
		LicensePlate: form.NormalizeLicensePlate(v.Vehicle.LicensePlate),
		VIN:          strings.TrimSpace(v.Vehicle.VIN),

		Departure: mapLeg(v.Departure),
		Arrival:   mapLeg(v.Arrival),

		Insurance: v.Options.Insurance,
		RoundTrip: v.Options.RoundTrip,
		Express:   v.Options.Express,

		Priority:    mapPriority(v.Priority),
		Notes:       strings.TrimSpace(v.Notes),
		Attachments: v.Attachments,

		Status:    entities.MissionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func mapLeg(s form.StopGroup) entities.Leg {
	return entities.Leg{
		Street:      strings.TrimSpace(s.Address.Street),
		City:        strings.TrimSpace(s.Address.City),
		PostalCode:  strings.TrimSpace(s.Address.PostalCode),
		Country:     strings.TrimSpace(s.Address.Country),
		ContactName: strings.TrimSpace(s.ContactName),
		Date:        strings.TrimSpace(s.Date),
		TimeWindow:  strings.TrimSpace(s.TimeWindow),
	}
}

func mapPriority(p string) entities.MissionPriority {
	switch entities.MissionPriority(p) {
	case entities.MissionPriorityHigh:
		return entities.MissionPriorityHigh
	case entities.MissionPriorityUrgent:
		return entities.MissionPriorityUrgent
	default:
		return entities.MissionPriorityNormal
	}
}

// buildDocument assembles an issued invoice from the wizard values: parsed
// line items, computed totals, and the next sequential number.
func (u *WizardUseCase) buildDocument(ctx context.Context, ownerID string, v form.Values) (entities.BillingDocument, error) {
	if len(v.Items) == 0 {
		return entities.BillingDocument{}, ErrNoLineItems
	}
	items, err := lineItemsFromInputs(v.Items)
	if err != nil {
		return entities.BillingDocument{}, err
	}
	totals := billing.ComputeTotals(items, v.TaxRate)

	now := u.now().UTC()
	seq, err := u.seqRepo.Next(ctx, ownerID, now.Year(), entities.DocumentKindInvoice)
	if err != nil {
		log.Printf("[wizard][usecase] sequence next failed owner=%s err=%v", ownerID, err)
		return entities.BillingDocument{}, err
	}

	return entities.BillingDocument{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Kind:    entities.DocumentKindInvoice,
		Number:  FormatDocumentNumber(entities.DocumentKindInvoice, now.Year(), seq),

		ClientName:  strings.TrimSpace(v.Client.Name),
		ClientEmail: strings.TrimSpace(v.Client.Email),
		ClientPhone: strings.TrimSpace(v.Client.Phone),

		Items:          items,
		TaxRatePercent: v.TaxRate,
		SubtotalCents:  totals.SubtotalCents,
		TaxCents:       totals.TaxCents,
		TotalCents:     totals.TotalCents,

		Notes: strings.TrimSpace(v.Notes),

		Status:    entities.DocumentStatusIssued,
		IssuedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FormatDocumentNumber renders the sequential document number:
// FAC-2026-0007 for invoices, DEV-2026-0007 for quotes.
func FormatDocumentNumber(kind entities.DocumentKind, year int, seq int64) string {
	prefix := "FAC"
	if kind == entities.DocumentKindQuote {
		prefix = "DEV"
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}
