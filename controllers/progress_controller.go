package controllers

import (
	"net/http"
	"strconv"

	"github.com/r4mir3zzz/habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Svc         *services.ProgressService
	Invitations *services.InvitationService
	Users       *services.UserService
}

func NewProgressController(svc *services.ProgressService, inv *services.InvitationService, users *services.UserService) *ProgressController {
	return &ProgressController{Svc: svc, Invitations: inv, Users: users}
}

// Daily returns the caller's own completion series.
func (pc *ProgressController) Daily(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	series, err := pc.Svc.DailySeriesFor(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

// Summary returns the per-habit rollup table.
func (pc *ProgressController) Summary(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	totals, err := pc.Svc.HabitTotalsFor(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": totals})
}

// Recent returns the caller's latest saved records, newest first.
func (pc *ProgressController) Recent(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	records, err := pc.Svc.RecentRecordsFor(c.Request.Context(), uid, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// SharedDaily returns another user's completion series, but only when
// that user's invitation to the caller has been accepted.
func (pc *ProgressController) SharedDaily(c *gin.Context) {
	_, viewer, ok := identityFromCtx(c)
	if !ok {
		return
	}
	owner := c.Param("username")

	allowed, err := pc.Invitations.CanView(c.Request.Context(), viewer, owner)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !allowed {
		abortWithError(c, services.ErrNotShared)
		return
	}

	ownerUser, err := pc.Users.FindByUsername(c.Request.Context(), owner)
	if err != nil {
		abortWithError(c, err)
		return
	}

	series, err := pc.Svc.DailySeriesFor(c.Request.Context(), ownerUser.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": owner, "series": series})
}
