package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	password := []byte("Correct-Horse-9")
	hash, err := h.Hash(password)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "" || hash == string(password) {
		t.Fatal("Hash returned empty or plaintext")
	}
	if err := h.Compare(hash, password); err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if err := h.Compare(hash, []byte("wrong")); err == nil {
		t.Fatal("Compare with wrong password should fail")
	}
	h.CompareDummy(password)
}

func TestHasher_Cost(t *testing.T) {
	if got := NewHasher(5).Cost; got != 5 {
		t.Errorf("Cost want 5, got %d", got)
	}
	if got := NewHasher(0).Cost; got != bcrypt.DefaultCost {
		t.Errorf("zero cost should default, got %d", got)
	}
	if got := NewHasher(1).Cost; got != bcrypt.MinCost {
		t.Errorf("low cost should clamp to MinCost, got %d", got)
	}
}
