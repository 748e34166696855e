package interfaces

import (
	"context"

	"convoyage/internal/domain/entities"
)

// IMissionRepository abstracts DynamoDB persistence for Mission.
//
// A zero-valued entity with an empty ID means "not found"; errors are
// reserved for transport/storage failures.

type IMissionRepository interface {
	Create(ctx context.Context, m entities.Mission) (entities.Mission, error)
	GetByID(ctx context.Context, id string) (entities.Mission, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Mission, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.MissionStatus) (entities.Mission, error)
}
