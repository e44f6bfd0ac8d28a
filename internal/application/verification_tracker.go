package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
)

const (
	DefaultMaxVerificationAttempts = 3
	DefaultVerificationCooldown    = 5 * time.Minute
)

// VerificationTracker limits how often a verification email can be resent
// for one address. Counters live in the store so the limits hold across
// separate CLI runs.
type VerificationTracker struct {
	clock       ports.Clock
	store       ports.VerificationStore
	maxAttempts int
	cooldown    time.Duration

	// mu orders Record's read-modify-write within this process.
	mu sync.Mutex
}

// NewVerificationTracker keeps counters in memory when store is nil.
func NewVerificationTracker(clock ports.Clock, store ports.VerificationStore) *VerificationTracker {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if store == nil {
		store = newMemoryVerificationStore()
	}

	return &VerificationTracker{
		clock:       clock,
		store:       store,
		maxAttempts: DefaultMaxVerificationAttempts,
		cooldown:    DefaultVerificationCooldown,
	}
}

// CanResend reports whether another email may be sent now, and if not, why.
func (t *VerificationTracker) CanResend(ctx context.Context, email string) (bool, string, error) {
	entry, err := t.store.Get(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return false, "", fmt.Errorf("read verification attempts: %w", err)
	}

	if !entry.LastSentAt.IsZero() {
		elapsed := t.clock.Now().Sub(entry.LastSentAt)
		if elapsed < t.cooldown {
			remaining := int((t.cooldown - elapsed).Seconds())
			return false, fmt.Sprintf("Please wait %dm %ds before requesting another verification email.", remaining/60, remaining%60), nil
		}
	}

	if entry.Count >= t.maxAttempts {
		return false, fmt.Sprintf("Maximum verification attempts (%d) reached. Please contact support.", t.maxAttempts), nil
	}

	return true, "", nil
}

// Record notes a sent verification email.
func (t *VerificationTracker) Record(ctx context.Context, email string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := domain.NormalizeEmail(email)
	entry, err := t.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read verification attempts: %w", err)
	}

	entry.Email = key
	entry.Count++
	entry.LastSentAt = t.clock.Now()
	if err := t.store.Put(ctx, entry); err != nil {
		return fmt.Errorf("save verification attempts: %w", err)
	}

	return nil
}

type memoryVerificationStore struct {
	mu       sync.Mutex
	attempts map[string]domain.VerificationAttempts
}

func newMemoryVerificationStore() *memoryVerificationStore {
	return &memoryVerificationStore{attempts: map[string]domain.VerificationAttempts{}}
}

func (s *memoryVerificationStore) Get(_ context.Context, email string) (domain.VerificationAttempts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.attempts[email]
	if !ok {
		return domain.VerificationAttempts{Email: email}, nil
	}
	return entry, nil
}

func (s *memoryVerificationStore) Put(_ context.Context, attempts domain.VerificationAttempts) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[attempts.Email] = attempts
	return nil
}
