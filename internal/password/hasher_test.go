package password

import (
	"errors"
	"strings"
	"testing"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	// MinCost keeps the test fast.
	h := NewBcryptHasher(WithCost(4))

	hash, err := h.Hash("Secret123!")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "Secret123!" {
		t.Fatal("hash must not equal plaintext")
	}
	if err := h.Verify("Secret123!", hash); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := h.Verify("wrong-password", hash); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))
	a, _ := h.Hash("Secret123!")
	b, _ := h.Hash("Secret123!")
	if a == b {
		t.Error("two hashes of the same password must differ (random salt)")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))
	for _, bad := range []string{"", "not-a-hash", "$2a$zz$garbage"} {
		if err := h.Verify("anything", bad); !errors.Is(err, ErrMismatch) {
			t.Errorf("malformed hash %q: expected ErrMismatch, got %v", bad, err)
		}
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))
	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Error("expected error for password over the bcrypt limit")
	}
}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	// Scaled-down parameters keep the test fast.
	h := NewArgon2Hasher(WithArgon2Time(1), WithArgon2Memory(8), WithArgon2Threads(1))

	hash, err := h.Hash("Secret123!")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	if err := h.Verify("Secret123!", hash); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := h.Verify("wrong", hash); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	h := NewArgon2Hasher()
	for _, bad := range []string{"", "$argon2id$bogus", "$2a$12$bcrypt-style"} {
		if err := h.Verify("anything", bad); !errors.Is(err, ErrMismatch) {
			t.Errorf("malformed hash %q: expected ErrMismatch, got %v", bad, err)
		}
	}
}

func TestNewHasher_FromConfig(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Algorithm != AlgorithmBcrypt {
		t.Errorf("expected bcrypt default, got %s", cfg.Algorithm)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected default cost 12, got %d", cfg.BcryptCost)
	}

	if _, ok := NewHasher(Config{Algorithm: AlgorithmBcrypt, BcryptCost: 4}).(*BcryptHasher); !ok {
		t.Error("expected BcryptHasher")
	}
	if _, ok := NewHasher(Config{Algorithm: AlgorithmArgon2id}).(*Argon2Hasher); !ok {
		t.Error("expected Argon2Hasher")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Algorithm: "md5", BcryptCost: 12}
	if err := cfg.Validate(); err == nil {
		t.Error("expected unsupported algorithm to be rejected")
	}
	cfg = Config{Algorithm: AlgorithmBcrypt, BcryptCost: 99}
	if err := cfg.Validate(); err == nil {
		t.Error("expected out-of-range cost to be rejected")
	}
}
