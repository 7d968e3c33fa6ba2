package security

import (
	"crypto/rand"
	"encoding/base64"
)

// inviteTokenBytes is the entropy of an invitation token (256 bits).
const inviteTokenBytes = 32

// NewInviteToken returns an opaque, URL-safe invitation token drawn from crypto/rand.
// It carries no information about the workspace, email or issue time.
func NewInviteToken() (string, error) {
	b := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidInviteTokenFormat reports whether s could have been produced by NewInviteToken.
// Token lookups reject anything else as not found without reading the store.
func ValidInviteTokenFormat(s string) bool {
	if len(s) != base64.RawURLEncoding.EncodedLen(inviteTokenBytes) {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil
}
