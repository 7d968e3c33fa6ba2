package security

import (
	"testing"
	"time"
)

func TestTokenProvider_IssueAndValidateAccess(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	access, exp, err := p.IssueAccess("u1", "a@x.com")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if access == "" {
		t.Fatal("access token empty")
	}
	if exp.Before(time.Now()) {
		t.Fatal("expires at in the past")
	}
	uid, email, err := p.ValidateAccess(access)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if uid != "u1" || email != "a@x.com" {
		t.Errorf("ValidateAccess: got userID=%q email=%q", uid, email)
	}
}

func TestTokenProvider_ValidateAccessInvalid(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	if _, _, err := p.ValidateAccess("invalid-token"); err != ErrInvalidToken {
		t.Errorf("ValidateAccess invalid token: want ErrInvalidToken, got %v", err)
	}
}

func TestTokenProvider_RejectsForeignAudienceAndExpired(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	other := NewTokenProvider(p.privateKey, p.publicKey, "workspace-hub-test", "other-audience", time.Minute)
	tok, _, err := other.IssueAccess("u1", "a@x.com")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, _, err := p.ValidateAccess(tok); err != ErrInvalidToken {
		t.Errorf("foreign audience: want ErrInvalidToken, got %v", err)
	}

	tok, _, err = p.IssueAccess("u1", "a@x.com")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	p.now = func() time.Time { return time.Now().Add(time.Hour) }
	if _, _, err := p.ValidateAccess(tok); err != ErrInvalidToken {
		t.Errorf("expired token: want ErrInvalidToken, got %v", err)
	}
}

func TestTokenProvider_VerifyOnly(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	tok, _, err := p.IssueAccess("u1", "a@x.com")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	verifier := NewTokenProvider(nil, p.publicKey, "workspace-hub-test", "workspace-hub-test-api", time.Minute)
	if _, _, err := verifier.IssueAccess("u1", "a@x.com"); err != ErrNoSigningKey {
		t.Errorf("verify-only IssueAccess: want ErrNoSigningKey, got %v", err)
	}
	if uid, _, err := verifier.ValidateAccess(tok); err != nil || uid != "u1" {
		t.Errorf("verify-only ValidateAccess = (%q, %v)", uid, err)
	}
}
