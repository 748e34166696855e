package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"convoyage/internal/domain/billing"
	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound           = errors.New("payment not found")
	ErrInvalidPaymentDocumentID  = errors.New("invalid document_id")
	ErrInvalidProviderPayload    = errors.New("invalid provider payload")
	ErrDocumentNotPayable        = errors.New("document not payable")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
	ErrPaymentGatewayRejected    = errors.New("payment gateway rejected the payment")
)

// IPaymentUseCase records a provider payment against an issued invoice and
// marks the invoice paid on approval.

type IPaymentUseCase interface {
	CreateForDocument(ctx context.Context, documentID string, providerPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByDocumentID(ctx context.Context, documentID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	docRepo interfaces.IDocumentRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, docRepo interfaces.IDocumentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, docRepo: docRepo, gateway: gateway, now: time.Now}
}

// CreateForDocument forwards the provider payload to the gateway with the
// invoice total as the authoritative amount, persists the provider
// response, and flips the invoice to paid when the provider approves.
func (u *PaymentUseCase) CreateForDocument(ctx context.Context, documentID string, providerPayload json.RawMessage) (entities.Payment, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.Payment{}, ErrInvalidPaymentDocumentID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayUnavailable
	}

	doc, err := u.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if doc.ID == "" {
		return entities.Payment{}, ErrDocumentNotFound
	}
	if doc.Kind != entities.DocumentKindInvoice || doc.Status != entities.DocumentStatusIssued {
		return entities.Payment{}, ErrDocumentNotPayable
	}

	// The invoice in DB is the source of truth for the amount; the
	// external_reference ties provider events back to the document.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = doc.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Facture %s", doc.Number)
	}
	reqMap["transaction_amount"] = centsToUnits(doc.TotalCents)
	if b, err := json.Marshal(reqMap); err == nil {
		providerPayload = b
	}

	log.Printf("[payment][usecase] calling gateway document_id=%s amount=%s", doc.ID, billing.FormatCents(doc.TotalCents))
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed document_id=%s err=%v", doc.ID, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayRejected, err)
	}

	status := entities.PaymentStatusApproved
	if providerStatus != "approved" {
		status = entities.PaymentStatusDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed document_id=%s err=%v", doc.ID, err)
	}

	p := entities.Payment{
		ID:                 providerID,
		DocumentID:         doc.ID,
		Date:               u.now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment create failed document_id=%s payment_id=%s err=%v", doc.ID, p.ID, err)
		return entities.Payment{}, err
	}

	if status == entities.PaymentStatusApproved {
		if _, err := u.docRepo.UpdateStatusByID(ctx, doc.ID, entities.DocumentStatusPaid); err != nil {
			// The payment is recorded; a failed status flip is logged and
			// left for reconciliation rather than failing the call.
			log.Printf("[payment][usecase] invoice status update failed document_id=%s err=%v", doc.ID, err)
		}
	}

	log.Printf("[payment][usecase] payment recorded document_id=%s payment_id=%s status=%s", doc.ID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByDocumentID(ctx context.Context, documentID string) ([]entities.Payment, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, ErrInvalidPaymentDocumentID
	}
	return u.repo.ListByDocumentID(ctx, documentID)
}

// centsToUnits converts cents into the major-unit float the provider API
// expects. Presentation boundary only; internal math stays in cents.
func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
