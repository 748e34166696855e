package interfaces

import (
	"context"

	"convoyage/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByDocumentID(ctx context.Context, documentID string) ([]entities.Payment, error)
}
