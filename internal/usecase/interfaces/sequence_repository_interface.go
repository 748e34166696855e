package interfaces

import (
	"context"

	"convoyage/internal/domain/entities"
)

// ISequenceRepository hands out sequential document numbers, one counter
// per {owner, year, kind}. Next must be atomic: two concurrent callers can
// never receive the same number.

type ISequenceRepository interface {
	Next(ctx context.Context, ownerID string, year int, kind entities.DocumentKind) (int64, error)
}
