package application

import (
	"context"
	"fmt"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
	"go.uber.org/zap"
)

// AccountService handles registration, login and verification resends on
// top of an identity provider.
type AccountService struct {
	identity ports.IdentityProvider
	tracker  *VerificationTracker
	logger   *zap.Logger
}

func NewAccountService(identity ports.IdentityProvider, tracker *VerificationTracker, logger *zap.Logger) *AccountService {
	if tracker == nil {
		tracker = NewVerificationTracker(nil, nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AccountService{identity: identity, tracker: tracker, logger: logger}
}

// Register validates the credentials locally before calling the identity
// provider. Nothing is sent to the provider when validation fails.
func (s *AccountService) Register(ctx context.Context, creds Credentials) Outcome {
	creds = creds.normalized()
	if err := domain.ValidateEmail(creds.Email); err != nil {
		return failure(err)
	}
	if err := domain.ValidatePassword(creds.Password); err != nil {
		return failure(err)
	}

	identity, err := s.identity.Register(ctx, creds.Email, creds.Password)
	if err != nil {
		s.logger.Info("registration rejected", zap.String("email", creds.Email), zap.Error(err))
		return failure(err)
	}
	s.logger.Info("user registered", zap.String("user_id", string(identity.UserID)))

	if !s.identity.RequiresVerification() {
		return Outcome{OK: true, Message: "Registration successful! You can now log in."}
	}

	if err := s.identity.SendVerification(ctx, identity); err != nil {
		s.logger.Warn("send verification email", zap.String("email", creds.Email), zap.Error(err))
		return Outcome{
			OK:      true,
			Message: "Registration successful, but the verification email could not be sent. Please request a new verification email.",
		}
	}

	return Outcome{
		OK:      true,
		Message: fmt.Sprintf("Registration successful! A verification email has been sent to %s. Please verify your email before logging in.", creds.Email),
	}
}

// Login authenticates a user. Unverified accounts are refused with the
// verification reminder but the identity is still returned so the caller can
// offer a resend.
func (s *AccountService) Login(ctx context.Context, creds Credentials) (domain.Identity, Outcome) {
	creds = creds.normalized()
	if err := creds.validatePresence(); err != nil {
		return domain.Identity{}, failure(err)
	}

	identity, err := s.identity.Authenticate(ctx, creds.Email, creds.Password)
	if err != nil {
		s.logger.Info("login rejected", zap.String("email", creds.Email), zap.Error(err))
		return domain.Identity{}, failure(err)
	}

	if s.identity.RequiresVerification() && !identity.Verified {
		return identity, Outcome{OK: false, Message: domain.VerificationStatusMessage(false, identity.Email)}
	}

	return identity, Outcome{OK: true, Message: fmt.Sprintf("Welcome back, %s!", identity.Email)}
}

// ResendVerification sends a new verification email, subject to the
// tracker's cooldown and attempt limit.
func (s *AccountService) ResendVerification(ctx context.Context, creds Credentials) Outcome {
	creds = creds.normalized()
	if err := creds.validatePresence(); err != nil {
		return failure(err)
	}

	ok, message, err := s.tracker.CanResend(ctx, creds.Email)
	if err != nil {
		s.logger.Error("check verification limits", zap.String("email", creds.Email), zap.Error(err))
		return failure(err)
	}
	if !ok {
		return Outcome{OK: false, Message: message}
	}

	identity, err := s.identity.Authenticate(ctx, creds.Email, creds.Password)
	if err != nil {
		return failure(err)
	}
	if identity.Verified || !s.identity.RequiresVerification() {
		return Outcome{OK: true, Message: domain.VerificationStatusMessage(true, identity.Email)}
	}

	if err := s.identity.SendVerification(ctx, identity); err != nil {
		s.logger.Warn("resend verification email", zap.String("email", creds.Email), zap.Error(err))
		return failure(err)
	}
	if err := s.tracker.Record(ctx, creds.Email); err != nil {
		s.logger.Warn("record verification email", zap.String("email", creds.Email), zap.Error(err))
	}

	return Outcome{OK: true, Message: fmt.Sprintf("Verification email sent to %s. Please check your inbox.", identity.Email)}
}
