package controllers

import (
	"net/http"

	"github.com/r4mir3zzz/habit-tracker/config"
	"github.com/r4mir3zzz/habit-tracker/models"

	"github.com/gin-gonic/gin"
)

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// ToggleNotifications enables or disables invitation pushes on every
// device the caller registered.
func ToggleNotifications(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}
