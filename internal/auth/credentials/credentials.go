// Package credentials owns every secret-shaped value attached to a user:
// password hashes, member identifiers, and the numeric convenience PIN.
// Isolating PIN handling here means its storage strategy can be hardened
// later without touching the login contract.
package credentials

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "motorvault/pkg/domain-errors"
)

// HashPassword creates a bcrypt hash of the password. Each call salts
// independently, so the same plaintext never produces the same stored hash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeValidation, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "password is too long")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash. A
// malformed hash verifies false rather than erroring; the caller only ever
// needs the yes/no.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateMemberID produces a human-readable account handle of the form
// MV- followed by seven decimal digits. Uniqueness is enforced by the store's
// index at insert time, not here.
func GenerateMemberID() string {
	return "MV-" + randomDigits(7)
}

// GeneratePIN produces a four-digit numeric PIN. Leading zeros are valid, so
// the PIN is a string end to end and never parsed as an integer.
func GeneratePIN() string {
	return randomDigits(4)
}

func randomDigits(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("credentials: random source unavailable: %v", err))
	}
	digits := make([]byte, n)
	for i, b := range buf {
		digits[i] = '0' + b%10
	}
	return string(digits)
}
