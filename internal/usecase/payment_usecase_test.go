package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"convoyage/internal/domain/entities"
	mock_interfaces "convoyage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateForDocument(t *testing.T) {
	issuedInvoice := entities.BillingDocument{
		ID:         "inv-1",
		OwnerID:    "user-1",
		Kind:       entities.DocumentKindInvoice,
		Number:     "FAC-2026-0001",
		Status:     entities.DocumentStatusIssued,
		TotalCents: 60120,
	}

	payload := json.RawMessage(`{"payment_method_id":"pix"}`)

	t.Run("invalid document id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForDocument(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidPaymentDocumentID) {
			t.Fatalf("expected ErrInvalidPaymentDocumentID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForDocument(context.Background(), "inv-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForDocument(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("quote is not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, docRepo, gateway)

		quote := issuedInvoice
		quote.Kind = entities.DocumentKindQuote
		docRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(quote, nil)

		_, err := uc.CreateForDocument(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrDocumentNotPayable) {
			t.Fatalf("expected ErrDocumentNotPayable, got %v", err)
		}
	})

	t.Run("gateway rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, docRepo, gateway)

		docRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(issuedInvoice, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider 500"))

		_, err := uc.CreateForDocument(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrPaymentGatewayRejected) {
			t.Fatalf("expected ErrPaymentGatewayRejected, got %v", err)
		}
	})

	t.Run("approved payment flips the invoice to paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, docRepo, gateway)

		docRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(issuedInvoice, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sent json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]interface{}
				if err := json.Unmarshal(sent, &m); err != nil {
					t.Fatalf("bad outbound payload: %v", err)
				}
				// The invoice, not the caller, decides the amount.
				if m["transaction_amount"] != 601.20 {
					t.Fatalf("expected amount 601.20, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "inv-1" {
					t.Fatalf("expected external_reference inv-1, got %v", m["external_reference"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "mp-123" || p.DocumentID != "inv-1" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)
		docRepo.EXPECT().UpdateStatusByID(gomock.Any(), "inv-1", entities.DocumentStatusPaid).Return(issuedInvoice, nil)

		p, err := uc.CreateForDocument(context.Background(), "inv-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", p.Status)
		}
	})

	t.Run("denied payment is recorded without a status flip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, docRepo, gateway)

		docRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(issuedInvoice, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(
			"mp-456", "rejected", json.RawMessage(`{"id":"mp-456","status":"rejected"}`), nil,
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		p, err := uc.CreateForDocument(context.Background(), "inv-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusDenied {
			t.Fatalf("expected denied, got %s", p.Status)
		}
	})
}

func TestPaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListByDocumentID(t *testing.T) {
	t.Run("invalid document id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByDocumentID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentDocumentID) {
			t.Fatalf("expected ErrInvalidPaymentDocumentID, got %v", err)
		}
	})

	t.Run("passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListByDocumentID(gomock.Any(), "inv-1").Return([]entities.Payment{{ID: "p-1"}}, nil)

		got, err := uc.ListByDocumentID(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p-1" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})
}
