package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"convoyage/internal/domain/billing"
	"convoyage/internal/domain/entities"
	"convoyage/internal/domain/form"
	"convoyage/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound        = errors.New("document not found")
	ErrInvalidDocumentID       = errors.New("invalid document id")
	ErrNotAQuote               = errors.New("document is not a quote")
	ErrNotAnInvoice            = errors.New("document is not an invoice")
	ErrQuoteNotAccepted        = errors.New("quote not accepted")
	ErrAlreadyConverted        = errors.New("quote already converted")
	ErrInvalidClient           = errors.New("invalid client")
	ErrDocumentNotTransitional = errors.New("document status does not allow this transition")
)

// IBillingDocumentUseCase exposes quote/invoice operations outside the
// wizard: direct quote creation, quote→invoice conversion, and status
// transitions.

type IBillingDocumentUseCase interface {
	CreateQuote(ctx context.Context, ownerID string, client form.ContactGroup, items []form.LineItemInput, taxRatePercent int64, notes string) (entities.BillingDocument, error)
	ConvertQuoteToInvoice(ctx context.Context, quoteID string) (entities.BillingDocument, error)
	AcceptQuote(ctx context.Context, quoteID string) (entities.BillingDocument, error)
	DeclineQuote(ctx context.Context, quoteID string) (entities.BillingDocument, error)
	MarkInvoicePaid(ctx context.Context, invoiceID string) (entities.BillingDocument, error)
	VoidInvoice(ctx context.Context, invoiceID string) (entities.BillingDocument, error)
	GetByID(ctx context.Context, id string) (entities.BillingDocument, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.BillingDocument, error)
}

type BillingDocumentUseCase struct {
	repo interfaces.IDocumentRepository
	seq  interfaces.ISequenceRepository
	now  func() time.Time
}

var _ IBillingDocumentUseCase = (*BillingDocumentUseCase)(nil)

func NewBillingDocumentUseCase(repo interfaces.IDocumentRepository, seq interfaces.ISequenceRepository) *BillingDocumentUseCase {
	return &BillingDocumentUseCase{repo: repo, seq: seq, now: time.Now}
}

// WithClock replaces the time source. Test hook.
func (u *BillingDocumentUseCase) WithClock(now func() time.Time) *BillingDocumentUseCase {
	u.now = now
	return u
}

// CreateQuote issues a quote directly (no wizard) with a fresh sequential
// number. Line totals are derived, never taken from the caller.
func (u *BillingDocumentUseCase) CreateQuote(ctx context.Context, ownerID string, client form.ContactGroup, itemInputs []form.LineItemInput, taxRatePercent int64, notes string) (entities.BillingDocument, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.BillingDocument{}, ErrInvalidOwnerID
	}
	if strings.TrimSpace(client.Name) == "" {
		return entities.BillingDocument{}, ErrInvalidClient
	}
	if len(itemInputs) == 0 {
		return entities.BillingDocument{}, ErrNoLineItems
	}
	items, err := lineItemsFromInputs(itemInputs)
	if err != nil {
		return entities.BillingDocument{}, err
	}
	totals := billing.ComputeTotals(items, taxRatePercent)

	now := u.now().UTC()
	seq, err := u.seq.Next(ctx, ownerID, now.Year(), entities.DocumentKindQuote)
	if err != nil {
		return entities.BillingDocument{}, err
	}

	doc := entities.BillingDocument{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Kind:    entities.DocumentKindQuote,
		Number:  FormatDocumentNumber(entities.DocumentKindQuote, now.Year(), seq),

		ClientName:  strings.TrimSpace(client.Name),
		ClientEmail: strings.TrimSpace(client.Email),
		ClientPhone: strings.TrimSpace(client.Phone),

		Items:          items,
		TaxRatePercent: taxRatePercent,
		SubtotalCents:  totals.SubtotalCents,
		TaxCents:       totals.TaxCents,
		TotalCents:     totals.TotalCents,

		Notes: strings.TrimSpace(notes),

		Status:    entities.DocumentStatusIssued,
		IssuedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, doc)
}

// ConvertQuoteToInvoice issues a new invoice carrying the accepted quote's
// line items and totals snapshot. The invoice gets its own number from the
// invoice sequence; the quote is left untouched apart from linkage.
func (u *BillingDocumentUseCase) ConvertQuoteToInvoice(ctx context.Context, quoteID string) (entities.BillingDocument, error) {
	quote, err := u.getKind(ctx, quoteID, entities.DocumentKindQuote, ErrNotAQuote)
	if err != nil {
		return entities.BillingDocument{}, err
	}
	if quote.Status != entities.DocumentStatusAccepted {
		return entities.BillingDocument{}, ErrQuoteNotAccepted
	}

	existing, err := u.repo.ListByOwnerID(ctx, quote.OwnerID)
	if err != nil {
		return entities.BillingDocument{}, err
	}
	for _, d := range existing {
		if d.SourceQuoteID == quote.ID {
			return entities.BillingDocument{}, ErrAlreadyConverted
		}
	}

	now := u.now().UTC()
	seq, err := u.seq.Next(ctx, quote.OwnerID, now.Year(), entities.DocumentKindInvoice)
	if err != nil {
		return entities.BillingDocument{}, err
	}

	inv := quote
	inv.ID = uuid.NewString()
	inv.Kind = entities.DocumentKindInvoice
	inv.Number = FormatDocumentNumber(entities.DocumentKindInvoice, now.Year(), seq)
	inv.SourceQuoteID = quote.ID
	inv.Status = entities.DocumentStatusIssued
	inv.IssuedAt = now
	inv.CreatedAt = now
	inv.UpdatedAt = now
	return u.repo.Create(ctx, inv)
}

func (u *BillingDocumentUseCase) AcceptQuote(ctx context.Context, quoteID string) (entities.BillingDocument, error) {
	return u.transition(ctx, quoteID, entities.DocumentKindQuote, ErrNotAQuote, entities.DocumentStatusAccepted)
}

func (u *BillingDocumentUseCase) DeclineQuote(ctx context.Context, quoteID string) (entities.BillingDocument, error) {
	return u.transition(ctx, quoteID, entities.DocumentKindQuote, ErrNotAQuote, entities.DocumentStatusDeclined)
}

func (u *BillingDocumentUseCase) MarkInvoicePaid(ctx context.Context, invoiceID string) (entities.BillingDocument, error) {
	return u.transition(ctx, invoiceID, entities.DocumentKindInvoice, ErrNotAnInvoice, entities.DocumentStatusPaid)
}

func (u *BillingDocumentUseCase) VoidInvoice(ctx context.Context, invoiceID string) (entities.BillingDocument, error) {
	return u.transition(ctx, invoiceID, entities.DocumentKindInvoice, ErrNotAnInvoice, entities.DocumentStatusVoid)
}

func (u *BillingDocumentUseCase) GetByID(ctx context.Context, id string) (entities.BillingDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingDocument{}, ErrInvalidDocumentID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingDocument{}, err
	}
	if d.ID == "" {
		return entities.BillingDocument{}, ErrDocumentNotFound
	}
	return d, nil
}

func (u *BillingDocumentUseCase) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.BillingDocument, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwnerID(ctx, ownerID)
}

func (u *BillingDocumentUseCase) getKind(ctx context.Context, id string, kind entities.DocumentKind, kindErr error) (entities.BillingDocument, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BillingDocument{}, err
	}
	if d.Kind != kind {
		return entities.BillingDocument{}, kindErr
	}
	return d, nil
}

// transition moves an issued document to a terminal status. Accepted,
// declined, paid, and void all branch from issued only.
func (u *BillingDocumentUseCase) transition(ctx context.Context, id string, kind entities.DocumentKind, kindErr error, status entities.DocumentStatus) (entities.BillingDocument, error) {
	d, err := u.getKind(ctx, id, kind, kindErr)
	if err != nil {
		return entities.BillingDocument{}, err
	}
	if d.Status != entities.DocumentStatusIssued {
		return entities.BillingDocument{}, ErrDocumentNotTransitional
	}
	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.BillingDocument{}, err
	}
	if updated.ID == "" {
		return entities.BillingDocument{}, ErrDocumentNotFound
	}
	return updated, nil
}
