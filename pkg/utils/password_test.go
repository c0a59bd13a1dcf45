package utils

import (
	"encoding/base64"
	"fmt"
	"testing"

	"golang.org/x/crypto/argon2"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Error("VerifyPassword() = false for correct password")
	}

	ok, err = VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if ok {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	h1, err := HashPassword("pw123456")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("pw123456")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salt is not random")
	}
}

func TestVerifyPasswordHonorsEncodedParams(t *testing.T) {
	// A hash produced with older, cheaper cost parameters must still verify
	// after the package constants are raised.
	salt := []byte("0123456789abcdef")
	memory, time, parallelism := uint32(32*1024), uint32(2), uint8(1)
	hash := argon2.IDKey([]byte("pw123456"), salt, time, memory, parallelism, 32)

	encoded := fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, time, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))

	ok, err := VerifyPassword("pw123456", encoded)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Error("VerifyPassword() = false for hash with non-default cost parameters")
	}

	ok, err = VerifyPassword("wrong", encoded)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if ok {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, bad := range []string{"", "plaintext", "$bcrypt$something", "$argon2id$v=19$m=65536,t=3,p=2$onlyonesegment"} {
		if _, err := VerifyPassword("pw", bad); err == nil {
			t.Errorf("VerifyPassword(%q) expected error", bad)
		}
	}
}
