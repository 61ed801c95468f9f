package ports

import (
	"context"
	"time"

	"ideabazaar/contexts/identity-access/principal-directory/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository owns principal persistence.
type Repository interface {
	GetPrincipal(ctx context.Context, principalID string) (entities.Principal, error)
	CreatePrincipal(ctx context.Context, principal entities.Principal) error
	UpdatePrincipal(ctx context.Context, principal entities.Principal) error
}
