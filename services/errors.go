package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Domain violations are sentinel errors so controllers can map them to
// HTTP statuses with errors.Is. None of them are fatal to the process.
var (
	ErrSelfInvite          = errors.New("cannot invite yourself")
	ErrUnknownUser         = errors.New("no such user")
	ErrDuplicateInvitation = errors.New("an invitation between these users already exists")
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrNotReceptor         = errors.New("only the invitation's recipient may do that")
	ErrNotAccepted         = errors.New("invitation is not accepted")
	ErrNotShared           = errors.New("that user has not shared their progress with you")

	ErrUserExists         = errors.New("email or username already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("account not verified")
	ErrBadVerification    = errors.New("invalid verification code")

	ErrHabitExists    = errors.New("habit already exists")
	ErrHabitNotFound  = errors.New("habit not found")
	ErrRecordNotFound = errors.New("record not found")

	// ErrNoHabitCatalog guards the completion-percentage denominator: a
	// user with completion records but zero registered habits is corrupt
	// upstream data, never a 0% or NaN.
	ErrNoHabitCatalog = errors.New("completion records exist but no habits are registered")

	// ErrStorageUnavailable wraps every database failure crossing the
	// service boundary. Services never retry; that is the caller's call.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

// isDuplicateKey recognizes a unique-constraint violation from either
// the postgres driver or the sqlite driver used in tests.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
