package controllers

import (
	"errors"
	"net/http"

	"github.com/r4mir3zzz/habit-tracker/services"

	"github.com/gin-gonic/gin"
)

// statusForError maps service sentinels to HTTP statuses. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrSelfInvite),
		errors.Is(err, services.ErrNoHabitCatalog):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrUnknownUser),
		errors.Is(err, services.ErrInvitationNotFound),
		errors.Is(err, services.ErrHabitNotFound),
		errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateInvitation),
		errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrHabitExists),
		errors.Is(err, services.ErrNotAccepted):
		return http.StatusConflict
	case errors.Is(err, services.ErrNotReceptor),
		errors.Is(err, services.ErrNotShared),
		errors.Is(err, services.ErrNotVerified):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrBadVerification):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func identityFromCtx(c *gin.Context) (uint, string, bool) {
	uid := c.GetUint("userID")
	username := c.GetString("username")
	if uid == 0 || username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return 0, "", false
	}
	return uid, username, true
}
