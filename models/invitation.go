package models

import (
	"gorm.io/gorm"
)

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// Invitation is a directed sharing edge from Emisor (sender) to Receptor
// (recipient), keyed by username. Rejection deletes the row outright, so
// there is no rejected state and a later re-send is allowed.
//
// The unique index covers the forward direction only; the service layer
// additionally blocks the reverse direction before inserting. The index
// is what turns two concurrent sends of the same pair into a constraint
// violation instead of two rows.
type Invitation struct {
	gorm.Model
	Emisor   string `gorm:"index;not null;uniqueIndex:idx_invitations_pair"`
	Receptor string `gorm:"index;not null;uniqueIndex:idx_invitations_pair"`
	Status   string `gorm:"size:16;not null;default:pending"`
}
