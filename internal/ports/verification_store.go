package ports

import (
	"context"

	"github.com/bnema/careerbot/internal/domain"
)

// VerificationStore keeps resend counters across processes.
type VerificationStore interface {
	// Get returns a zero count for an address with no recorded sends.
	Get(ctx context.Context, email string) (domain.VerificationAttempts, error)
	Put(ctx context.Context, attempts domain.VerificationAttempts) error
}
