package interfaces

import (
	"context"

	"convoyage/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for BillingDocument.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.BillingDocument) (entities.BillingDocument, error)
	GetByID(ctx context.Context, id string) (entities.BillingDocument, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.BillingDocument, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.DocumentStatus) (entities.BillingDocument, error)
}
