package security

import (
	"strings"
	"testing"
)

func TestNewInviteToken_Unique(t *testing.T) {
	const n = 1000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		tok, err := NewInviteToken()
		if err != nil {
			t.Fatalf("NewInviteToken: %v", err)
		}
		if _, dup := seen[tok]; dup {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[tok] = struct{}{}
		if !ValidInviteTokenFormat(tok) {
			t.Fatalf("token %q fails its own format check", tok)
		}
		if strings.ContainsAny(tok, "+/=") {
			t.Fatalf("token %q is not URL-safe", tok)
		}
	}
}

func TestValidInviteTokenFormat(t *testing.T) {
	for _, s := range []string{"", "short", strings.Repeat("a", 42), strings.Repeat("*", 43)} {
		if ValidInviteTokenFormat(s) {
			t.Errorf("ValidInviteTokenFormat(%q) = true", s)
		}
	}
}
