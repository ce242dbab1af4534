package services

import (
	"fmt"

	"github.com/r4mir3zzz/habit-tracker/models"

	"gorm.io/gorm"
)

// Invitation event kinds pushed to clients.
const (
	EventInvitationReceived = "invitation.received"
	EventInvitationAccepted = "invitation.accepted"
)

type shareEventDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _share shareEventDeps

func InitShareEvents(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_share = shareEventDeps{db: db, rt: rt, ps: ps}
}

// EmitInvitationEvent notifies username about an invitation lifecycle
// change over websocket and push. Best-effort: the ledger operation has
// already committed, so delivery failures are swallowed. Safe to call
// before InitShareEvents (it becomes a no-op).
func EmitInvitationEvent(username, kind string, inv *models.Invitation) {
	if _share.db == nil {
		return
	}

	var user models.User
	if err := _share.db.Where("username = ?", username).First(&user).Error; err != nil {
		return
	}

	if _share.rt != nil {
		_share.rt.Broadcast(user.ID, map[string]any{
			"kind":       kind,
			"invitation": inv,
		})
	}
	if _share.ps != nil {
		var title, body string
		switch kind {
		case EventInvitationAccepted:
			title = "Invitation accepted"
			body = fmt.Sprintf("%s accepted your invitation and can now see your progress.", inv.Receptor)
		default:
			title = "New invitation"
			body = fmt.Sprintf("%s wants to share their habit progress with you.", inv.Emisor)
		}
		_share.ps.PushToUser(user.ID, title, body, map[string]string{
			"kind":         kind,
			"invitationId": fmt.Sprintf("%d", inv.ID),
		})
	}
}
