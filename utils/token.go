package utils

import (
	"math/rand"
	"time"
)

// GenerateVerificationCode returns a code of uppercase letters and
// digits, the alphabet users are asked to type back from their inbox.
func GenerateVerificationCode(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	rand.Seed(time.Now().UnixNano())

	code := make([]byte, length)
	for i := range code {
		code[i] = charset[rand.Intn(len(charset))]
	}
	return string(code)
}
