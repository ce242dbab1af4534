package controllers

import (
	"net/http"
	"strconv"

	"github.com/r4mir3zzz/habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type InvitationController struct {
	Svc *services.InvitationService
}

func NewInvitationController(svc *services.InvitationService) *InvitationController {
	return &InvitationController{Svc: svc}
}

type SendInvitationInput struct {
	Receptor string `json:"receptor" binding:"required"`
}

func (ic *InvitationController) Send(c *gin.Context) {
	_, username, ok := identityFromCtx(c)
	if !ok {
		return
	}

	var input SendInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := ic.Svc.Send(c.Request.Context(), username, input.Receptor)
	if err != nil {
		abortWithError(c, err)
		return
	}

	services.EmitInvitationEvent(inv.Receptor, services.EventInvitationReceived, inv)

	c.JSON(http.StatusCreated, gin.H{"id": inv.ID, "status": inv.Status})
}

func (ic *InvitationController) Accept(c *gin.Context) {
	_, username, ok := identityFromCtx(c)
	if !ok {
		return
	}
	id, ok := invitationID(c)
	if !ok {
		return
	}

	inv, err := ic.Svc.Accept(c.Request.Context(), id, username)
	if err != nil {
		abortWithError(c, err)
		return
	}

	services.EmitInvitationEvent(inv.Emisor, services.EventInvitationAccepted, inv)

	c.JSON(http.StatusOK, gin.H{"id": inv.ID, "status": inv.Status})
}

func (ic *InvitationController) Reject(c *gin.Context) {
	_, username, ok := identityFromCtx(c)
	if !ok {
		return
	}
	id, ok := invitationID(c)
	if !ok {
		return
	}

	if err := ic.Svc.Reject(c.Request.Context(), id, username); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ic *InvitationController) Revoke(c *gin.Context) {
	_, username, ok := identityFromCtx(c)
	if !ok {
		return
	}
	id, ok := invitationID(c)
	if !ok {
		return
	}

	if err := ic.Svc.Revoke(c.Request.Context(), id, username); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPending returns the caller's invitation inbox, oldest first.
func (ic *InvitationController) ListPending(c *gin.Context) {
	_, username, ok := identityFromCtx(c)
	if !ok {
		return
	}

	invs, err := ic.Svc.ListPendingFor(c.Request.Context(), username)
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]gin.H, 0, len(invs))
	for _, inv := range invs {
		out = append(out, gin.H{"id": inv.ID, "emisor": inv.Emisor, "sent_at": inv.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"invitations": out})
}

// ListAcceptedSenders returns the usernames whose progress the caller
// may view.
func (ic *InvitationController) ListAcceptedSenders(c *gin.Context) {
	_, username, ok := identityFromCtx(c)
	if !ok {
		return
	}

	senders, err := ic.Svc.ListAcceptedSendersFor(c.Request.Context(), username)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"senders": senders})
}

func invitationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation id"})
		return 0, false
	}
	return uint(id), true
}
