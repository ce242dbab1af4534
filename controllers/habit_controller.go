package controllers

import (
	"net/http"

	"github.com/r4mir3zzz/habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	Svc *services.HabitService
}

func NewHabitController(svc *services.HabitService) *HabitController {
	return &HabitController{Svc: svc}
}

type HabitInput struct {
	Name string `json:"name" binding:"required"`
}

func (hc *HabitController) List(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	habits, err := hc.Svc.List(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

func (hc *HabitController) Add(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	var input HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := hc.Svc.Add(c.Request.Context(), uid, input.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": habit.ID, "name": habit.Name})
}

func (hc *HabitController) Remove(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if err := hc.Svc.Remove(c.Request.Context(), uid, name); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
