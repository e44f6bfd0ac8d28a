package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxEmailLength     = 254
	maxEmailLocalPart  = 64
	minPasswordLength  = 8
	minPasswordClasses = 2
	passwordSpecials   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var disposableDomains = map[string]struct{}{
	"10minutemail.com":  {},
	"tempmail.org":      {},
	"guerrillamail.com": {},
	"mailinator.com":    {},
	"yopmail.com":       {},
	"temp-mail.org":     {},
}

var commonPasswords = map[string]struct{}{
	"password":    {},
	"12345678":    {},
	"qwerty123":   {},
	"admin123":    {},
	"password123": {},
	"letmein":     {},
	"welcome123":  {},
}

// NormalizeEmail trims and lower-cases an address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail rejects malformed, oversized and disposable addresses.
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("Please enter a valid email address")
	}
	if len(email) > maxEmailLength {
		return NewValidationError("Email address is too long")
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]
	if len(local) > maxEmailLocalPart {
		return NewValidationError("Email local part is too long")
	}
	if _, ok := disposableDomains[strings.ToLower(domain)]; ok {
		return NewValidationError("Disposable email addresses are not allowed")
	}

	return nil
}

// ValidatePassword requires at least eight characters drawn from at least two
// of upper case, lower case, digits and specials, and rejects common
// passwords.
func ValidatePassword(password string) error {
	if password == "" {
		return NewValidationError("Password is required")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return NewValidationError("Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	classes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if present {
			classes++
		}
	}
	if classes < minPasswordClasses {
		return NewValidationError("Password must contain at least 2 of: uppercase, lowercase, numbers, special characters")
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		return NewValidationError("This password is too common. Please choose a stronger password")
	}

	return nil
}
