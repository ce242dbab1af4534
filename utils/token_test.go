package utils

import (
	"strings"
	"testing"
)

func TestGenerateVerificationCode(t *testing.T) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := GenerateVerificationCode(6)
	if len(code) != 6 {
		t.Fatalf("code %q has length %d, want 6", code, len(code))
	}
	for _, ch := range code {
		if !strings.ContainsRune(charset, ch) {
			t.Fatalf("code %q contains %q, outside the emailable alphabet", code, ch)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash equals the plaintext password")
	}
	if !CheckPasswordHash("hunter2hunter2", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
