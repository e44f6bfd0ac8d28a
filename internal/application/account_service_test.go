package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

func newTestAccountService(t *testing.T, identity *mocks.MockIdentityProvider) (*AccountService, *steppedClock) {
	t.Helper()

	tracker, clock := newSteppedTracker(t)
	return NewAccountService(identity, tracker, zaptest.NewLogger(t)), clock
}

func TestAccountServiceRegisterRejectsInvalidInputWithoutCallingProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		creds   Credentials
		message string
	}{
		{
			name:    "missing email",
			creds:   Credentials{Password: "Str0ngPass"},
			message: "Email is required",
		},
		{
			name:    "malformed email",
			creds:   Credentials{Email: "not-an-email", Password: "Str0ngPass"},
			message: "Please enter a valid email address",
		},
		{
			name:    "disposable domain",
			creds:   Credentials{Email: "x@mailinator.com", Password: "Str0ngPass"},
			message: "Disposable email addresses are not allowed",
		},
		{
			name:    "short password",
			creds:   Credentials{Email: "learner@example.com", Password: "Ab1cdef"},
			message: "Password must be at least 8 characters long",
		},
		{
			name:    "common password",
			creds:   Credentials{Email: "learner@example.com", Password: "password123"},
			message: "This password is too common. Please choose a stronger password",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			identity := mocks.NewMockIdentityProvider(t)
			service, _ := newTestAccountService(t, identity)

			outcome := service.Register(context.Background(), tc.creds)
			assert.False(t, outcome.OK)
			assert.Equal(t, tc.message, outcome.Message)
		})
	}
}

func TestAccountServiceRegisterSendsVerificationEmail(t *testing.T) {
	t.Parallel()

	identity := mocks.NewMockIdentityProvider(t)
	service, _ := newTestAccountService(t, identity)

	registered := domain.Identity{UserID: "u-1", Email: "learner@example.com", Token: "tok"}
	identity.EXPECT().Register(mockAnyContext(), "learner@example.com", "Str0ngPass").Return(registered, nil).Once()
	identity.EXPECT().RequiresVerification().Return(true)
	identity.EXPECT().SendVerification(mockAnyContext(), registered).Return(nil).Once()

	outcome := service.Register(context.Background(), Credentials{Email: " learner@example.com ", Password: "Str0ngPass"})
	require.True(t, outcome.OK)
	assert.Contains(t, outcome.Message, "A verification email has been sent to learner@example.com")

	ok, _ := canResend(t, service.tracker, "learner@example.com")
	assert.True(t, ok, "the registration email does not count toward resend attempts")
}

func TestAccountServiceRegisterWithoutVerification(t *testing.T) {
	t.Parallel()

	identity := mocks.NewMockIdentityProvider(t)
	service, _ := newTestAccountService(t, identity)

	identity.EXPECT().Register(mockAnyContext(), "learner@example.com", "Str0ngPass").
		Return(domain.Identity{UserID: "u-1", Email: "learner@example.com", Verified: true}, nil).Once()
	identity.EXPECT().RequiresVerification().Return(false)

	outcome := service.Register(context.Background(), Credentials{Email: "learner@example.com", Password: "Str0ngPass"})
	assert.Equal(t, Outcome{OK: true, Message: "Registration successful! You can now log in."}, outcome)
}

func TestAccountServiceRegisterMapsProviderError(t *testing.T) {
	t.Parallel()

	identity := mocks.NewMockIdentityProvider(t)
	service, _ := newTestAccountService(t, identity)

	identity.EXPECT().Register(mockAnyContext(), "learner@example.com", "Str0ngPass").
		Return(domain.Identity{}, domain.NewExternalError(domain.CodeEmailExists, errors.New("EMAIL_EXISTS"))).Once()

	outcome := service.Register(context.Background(), Credentials{Email: "learner@example.com", Password: "Str0ngPass"})
	assert.False(t, outcome.OK)
	assert.Equal(t, domain.UserMessage(domain.CodeEmailExists), outcome.Message)
}

func TestAccountServiceLogin(t *testing.T) {
	t.Parallel()

	verified := domain.Identity{UserID: "u-1", Email: "learner@example.com", Verified: true}
	unverified := domain.Identity{UserID: "u-2", Email: "new@example.com"}

	tests := []struct {
		name        string
		creds       Credentials
		setup       func(identity *mocks.MockIdentityProvider)
		wantOK      bool
		wantMessage string
		wantUser    domain.UserID
	}{
		{
			name:  "verified user",
			creds: Credentials{Email: "learner@example.com", Password: "Str0ngPass"},
			setup: func(identity *mocks.MockIdentityProvider) {
				identity.EXPECT().Authenticate(mockAnyContext(), "learner@example.com", "Str0ngPass").Return(verified, nil).Once()
				identity.EXPECT().RequiresVerification().Return(true)
			},
			wantOK:      true,
			wantMessage: "Welcome back, learner@example.com!",
			wantUser:    "u-1",
		},
		{
			name:  "unverified user is refused but identified",
			creds: Credentials{Email: "new@example.com", Password: "Str0ngPass"},
			setup: func(identity *mocks.MockIdentityProvider) {
				identity.EXPECT().Authenticate(mockAnyContext(), "new@example.com", "Str0ngPass").Return(unverified, nil).Once()
				identity.EXPECT().RequiresVerification().Return(true)
			},
			wantOK:      false,
			wantMessage: domain.VerificationStatusMessage(false, "new@example.com"),
			wantUser:    "u-2",
		},
		{
			name:  "wrong password",
			creds: Credentials{Email: "learner@example.com", Password: "nope"},
			setup: func(identity *mocks.MockIdentityProvider) {
				identity.EXPECT().Authenticate(mockAnyContext(), "learner@example.com", "nope").
					Return(domain.Identity{}, domain.NewExternalError(domain.CodeInvalidLoginCredentials, errors.New("INVALID_LOGIN_CREDENTIALS"))).Once()
			},
			wantOK:      false,
			wantMessage: domain.UserMessage(domain.CodeInvalidLoginCredentials),
		},
		{
			name:        "missing password",
			creds:       Credentials{Email: "learner@example.com"},
			setup:       func(*mocks.MockIdentityProvider) {},
			wantOK:      false,
			wantMessage: "Password is required",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			identity := mocks.NewMockIdentityProvider(t)
			tc.setup(identity)
			service, _ := newTestAccountService(t, identity)

			user, outcome := service.Login(context.Background(), tc.creds)
			assert.Equal(t, tc.wantOK, outcome.OK)
			assert.Equal(t, tc.wantMessage, outcome.Message)
			assert.Equal(t, tc.wantUser, user.UserID)
		})
	}
}

func TestAccountServiceResendVerificationCooldownAndLimit(t *testing.T) {
	t.Parallel()

	identity := mocks.NewMockIdentityProvider(t)
	service, clock := newTestAccountService(t, identity)

	unverified := domain.Identity{UserID: "u-2", Email: "new@example.com"}
	identity.EXPECT().Authenticate(mockAnyContext(), "new@example.com", "Str0ngPass").Return(unverified, nil).Times(3)
	identity.EXPECT().RequiresVerification().Return(true)
	identity.EXPECT().SendVerification(mockAnyContext(), unverified).Return(nil).Times(3)

	creds := Credentials{Email: "new@example.com", Password: "Str0ngPass"}

	outcome := service.ResendVerification(context.Background(), creds)
	require.True(t, outcome.OK)
	assert.Equal(t, "Verification email sent to new@example.com. Please check your inbox.", outcome.Message)

	clock.advance(time.Minute)
	outcome = service.ResendVerification(context.Background(), creds)
	assert.False(t, outcome.OK)
	assert.Equal(t, "Please wait 4m 0s before requesting another verification email.", outcome.Message)

	for i := 0; i < 2; i++ {
		clock.advance(DefaultVerificationCooldown)
		outcome = service.ResendVerification(context.Background(), creds)
		require.True(t, outcome.OK, "resend %d", i+2)
	}

	clock.advance(DefaultVerificationCooldown)
	outcome = service.ResendVerification(context.Background(), creds)
	assert.False(t, outcome.OK)
	assert.Equal(t, "Maximum verification attempts (3) reached. Please contact support.", outcome.Message)
}

func TestAccountServiceResendVerificationAlreadyVerified(t *testing.T) {
	t.Parallel()

	identity := mocks.NewMockIdentityProvider(t)
	service, _ := newTestAccountService(t, identity)

	identity.EXPECT().Authenticate(mockAnyContext(), "learner@example.com", "Str0ngPass").
		Return(domain.Identity{UserID: "u-1", Email: "learner@example.com", Verified: true}, nil).Once()

	outcome := service.ResendVerification(context.Background(), Credentials{Email: "learner@example.com", Password: "Str0ngPass"})
	assert.True(t, outcome.OK)
	assert.Equal(t, domain.VerificationStatusMessage(true, "learner@example.com"), outcome.Message)
}

func TestAccountServiceResendVerificationFailsClosedOnStoreError(t *testing.T) {
	t.Parallel()

	identity := mocks.NewMockIdentityProvider(t)
	clock, _ := newSteppedClock(t)
	store := mocks.NewMockVerificationStore(t)
	store.EXPECT().Get(mockAnyContext(), "new@example.com").
		Return(domain.VerificationAttempts{}, errors.New("permission denied")).Once()
	service := NewAccountService(identity, NewVerificationTracker(clock, store), zaptest.NewLogger(t))

	outcome := service.ResendVerification(context.Background(), Credentials{Email: "new@example.com", Password: "Str0ngPass"})
	assert.False(t, outcome.OK)
	assert.NotEmpty(t, outcome.Message)
}

func TestAccountServiceResendVerificationPersistsAttempt(t *testing.T) {
	t.Parallel()

	identity := mocks.NewMockIdentityProvider(t)
	clock, stepped := newSteppedClock(t)
	store := mocks.NewMockVerificationStore(t)
	service := NewAccountService(identity, NewVerificationTracker(clock, store), zaptest.NewLogger(t))

	unverified := domain.Identity{UserID: "u-2", Email: "new@example.com"}
	identity.EXPECT().Authenticate(mockAnyContext(), "new@example.com", "Str0ngPass").Return(unverified, nil).Once()
	identity.EXPECT().RequiresVerification().Return(true)
	identity.EXPECT().SendVerification(mockAnyContext(), unverified).Return(nil).Once()
	store.EXPECT().Get(mockAnyContext(), "new@example.com").
		Return(domain.VerificationAttempts{Email: "new@example.com"}, nil).Twice()
	store.EXPECT().Put(mockAnyContext(), domain.VerificationAttempts{
		Email:      "new@example.com",
		Count:      1,
		LastSentAt: stepped.now,
	}).Return(errors.New("read-only file system")).Once()

	outcome := service.ResendVerification(context.Background(), Credentials{Email: "new@example.com", Password: "Str0ngPass"})
	assert.True(t, outcome.OK, "the email went out even though the counter could not be saved")
}
