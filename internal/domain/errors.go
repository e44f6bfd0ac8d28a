package domain

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrSecretNotFound = errors.New("secret not found")
	ErrEmptyMessage   = errors.New("message is empty")
)

type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindExternal   ErrorKind = "external"
	ErrorKindUnexpected ErrorKind = "unexpected"
)

type ErrorCode string

const (
	CodeEmailExists             ErrorCode = "EMAIL_EXISTS"
	CodeWeakPassword            ErrorCode = "WEAK_PASSWORD"
	CodeInvalidEmail            ErrorCode = "INVALID_EMAIL"
	CodeUserDisabled            ErrorCode = "USER_DISABLED"
	CodeUserNotFound            ErrorCode = "USER_NOT_FOUND"
	CodeWrongPassword           ErrorCode = "WRONG_PASSWORD"
	CodeTooManyAttempts         ErrorCode = "TOO_MANY_ATTEMPTS_TRY_LATER"
	CodeEmailNotFound           ErrorCode = "EMAIL_NOT_FOUND"
	CodeInvalidLoginCredentials ErrorCode = "INVALID_LOGIN_CREDENTIALS"
	CodeOperationNotAllowed     ErrorCode = "OPERATION_NOT_ALLOWED"
	CodeExpiredOOBCode          ErrorCode = "EXPIRED_OOB_CODE"
	CodeInvalidOOBCode          ErrorCode = "INVALID_OOB_CODE"
	CodeModelUnavailable        ErrorCode = "MODEL_UNAVAILABLE"
	CodeHistoryUnavailable      ErrorCode = "HISTORY_UNAVAILABLE"
	CodeHistorySaveFailed       ErrorCode = "HISTORY_SAVE_FAILED"
	CodeUnknown                 ErrorCode = "UNKNOWN"
)

const unexpectedMessage = "An unexpected error occurred. Please try again later."

type codeMessage struct {
	code    ErrorCode
	message string
}

// userMessages is ordered; MatchErrorCode scans it front to back.
var userMessages = []codeMessage{
	{CodeEmailExists, "This email address is already registered. Please use a different email or try logging in."},
	{CodeWeakPassword, "Password is too weak. Please use at least 6 characters with a mix of letters and numbers."},
	{CodeInvalidEmail, "Please enter a valid email address."},
	{CodeUserDisabled, "This account has been disabled. Please contact support for assistance."},
	{CodeUserNotFound, "No account found with this email address. Please check your email or register for a new account."},
	{CodeWrongPassword, "Incorrect password. Please try again or reset your password."},
	{CodeTooManyAttempts, "Too many failed login attempts. Please try again later."},
	{CodeEmailNotFound, "No account found with this email address."},
	{CodeInvalidLoginCredentials, "Invalid email or password. Please check your credentials and try again."},
	{CodeOperationNotAllowed, "This sign-in method is not enabled. Please contact support."},
	{CodeExpiredOOBCode, "The verification link has expired. Please request a new verification email."},
	{CodeInvalidOOBCode, "The verification link is invalid. Please request a new verification email."},
	{CodeModelUnavailable, "The advisor could not answer right now. Please try sending your message again."},
	{CodeHistoryUnavailable, "Your chat history could not be loaded. You can keep chatting; older messages are not shown."},
	{CodeHistorySaveFailed, "This message could not be saved to your chat history."},
}

// UserMessage returns the fixed user-facing text for a code.
func UserMessage(code ErrorCode) string {
	for _, entry := range userMessages {
		if entry.code == code {
			return entry.message
		}
	}
	return unexpectedMessage
}

// MatchErrorCode finds the first known code contained in a raw provider
// error string such as "WEAK_PASSWORD : Password should be at least 6
// characters".
func MatchErrorCode(raw string) ErrorCode {
	for _, entry := range userMessages {
		if strings.Contains(raw, string(entry.code)) {
			return entry.code
		}
	}
	return CodeUnknown
}

// ServiceError is a categorized failure that can be shown to the user.
// Message overrides the table text; validation errors carry their own.
type ServiceError struct {
	Kind    ErrorKind
	Code    ErrorCode
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	text := string(e.Kind)
	if e.Code != "" {
		text += " " + string(e.Code)
	}
	if e.Message != "" {
		text += ": " + e.Message
	}
	if e.Err != nil {
		text += ": " + e.Err.Error()
	}
	return text
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return UserMessage(e.Code)
}

func NewValidationError(message string) *ServiceError {
	return &ServiceError{Kind: ErrorKindValidation, Message: message}
}

func NewExternalError(code ErrorCode, err error) *ServiceError {
	return &ServiceError{Kind: ErrorKindExternal, Code: code, Err: err}
}

// Describe maps any error to the message shown to the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.UserMessage()
	}
	if errors.Is(err, ErrEmptyMessage) {
		return "Please type a message first."
	}
	return unexpectedMessage
}
