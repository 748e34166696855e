package interfaces

import (
	"context"

	"convoyage/internal/domain/form"
)

// IDraftRepository abstracts the persistent draft slot. One slot per
// draft key; the key encodes wizard kind and owner ("mission:user-1").
//
// Drafts are advisory: callers must treat every failure here as
// recoverable and never let it surface to the user.

type IDraftRepository interface {
	Put(ctx context.Context, key string, d form.Draft) error
	// Get returns (draft, true, nil) when the slot holds a draft and
	// (zero, false, nil) when it is empty.
	Get(ctx context.Context, key string) (form.Draft, bool, error)
	Delete(ctx context.Context, key string) error
}
