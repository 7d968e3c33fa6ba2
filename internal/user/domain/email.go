package domain

import (
	"net/mail"
	"strings"

	apperrors "workspace-hub/backend/internal/platform/errors"
)

// NormalizeEmail trims and lowercases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseEmail normalizes email and checks it is a bare address whose domain has a dot.
// Account registration and invitations use it, so an invited address can always register.
func ParseEmail(email string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "email is not a valid address")
	}
	at := strings.LastIndexByte(email, '@')
	host := email[at+1:]
	if !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") || strings.Contains(host, "..") {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "email is not a valid address")
	}
	return email, nil
}
