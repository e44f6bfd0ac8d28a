package ports

import (
	"context"

	"github.com/bnema/careerbot/internal/domain"
)

// IdentityProvider registers and authenticates users. Failures carry a
// *domain.ServiceError with the provider's error code where one is known.
type IdentityProvider interface {
	Register(ctx context.Context, email, password string) (domain.Identity, error)
	Authenticate(ctx context.Context, email, password string) (domain.Identity, error)
	SendVerification(ctx context.Context, identity domain.Identity) error
	RequiresVerification() bool
}
