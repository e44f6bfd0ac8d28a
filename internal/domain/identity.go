package domain

import (
	"fmt"
	"time"
)

type UserID string

// Identity is an authenticated (or just registered) user. Token is the
// provider session token when the identity service issues one.
type Identity struct {
	UserID   UserID
	Email    string
	Verified bool
	Token    string
}

// HistoryMessage is one persisted chat message.
type HistoryMessage struct {
	Role      Role
	Content   string
	CreatedAt time.Time
}

// VerificationAttempts counts the verification emails sent to one address.
type VerificationAttempts struct {
	Email      string
	Count      int
	LastSentAt time.Time
}

// VerificationStatusMessage is shown after login or registration.
func VerificationStatusMessage(verified bool, email string) string {
	if verified {
		return fmt.Sprintf("Email %s is verified and ready to use!", email)
	}
	return fmt.Sprintf("Please verify your email address (%s) before logging in. Check your inbox for the verification link.", email)
}
