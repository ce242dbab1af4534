package controllers

import (
	"net/http"
	"time"

	"github.com/r4mir3zzz/habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type RecordController struct {
	Svc *services.RecordService
}

func NewRecordController(svc *services.RecordService) *RecordController {
	return &RecordController{Svc: svc}
}

type RecordInput struct {
	Habit     string `json:"habit" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
}

func parseRecordDate(c *gin.Context, raw string) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

// Save appends a new observation for (habit, date). Saving twice leaves
// two rows; the aggregator takes the later one.
func (rc *RecordController) Save(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	var input RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseRecordDate(c, input.Date)
	if !ok {
		return
	}

	rec, err := rc.Svc.Save(c.Request.Context(), uid, input.Habit, date, input.Completed)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": rec.ID})
}

// Update rewrites the flag on existing rows for (habit, date).
func (rc *RecordController) Update(c *gin.Context) {
	uid, _, ok := identityFromCtx(c)
	if !ok {
		return
	}

	var input RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseRecordDate(c, input.Date)
	if !ok {
		return
	}

	if err := rc.Svc.Update(c.Request.Context(), uid, input.Habit, date, input.Completed); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
