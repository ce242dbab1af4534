package services

import (
	"context"
	"errors"

	"github.com/r4mir3zzz/habit-tracker/models"

	"gorm.io/gorm"
)

// InvitationService owns the sharing state machine between two users:
// pending --accept--> accepted, pending --reject--> gone,
// accepted --revoke--> gone. Rejection and revocation delete the row
// outright, so either user may send again afterwards.
type InvitationService struct{ db *gorm.DB }

func NewInvitationService(db *gorm.DB) *InvitationService {
	return &InvitationService{db: db}
}

// Send creates a pending invitation from emisor to receptor. An existing
// invitation between the two users in either direction blocks a new one,
// whatever its state.
func (s *InvitationService) Send(ctx context.Context, emisor, receptor string) (*models.Invitation, error) {
	if emisor == receptor {
		return nil, ErrSelfInvite
	}

	var registered int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", receptor).
		Count(&registered).Error; err != nil {
		return nil, storageErr(err)
	}
	if registered == 0 {
		return nil, ErrUnknownUser
	}

	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("(emisor = ? AND receptor = ?) OR (emisor = ? AND receptor = ?)",
			emisor, receptor, receptor, emisor).
		Count(&existing).Error; err != nil {
		return nil, storageErr(err)
	}
	if existing > 0 {
		return nil, ErrDuplicateInvitation
	}

	inv := &models.Invitation{
		Emisor:   emisor,
		Receptor: receptor,
		Status:   models.InvitationPending,
	}
	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil {
		// A concurrent sender can slip between the check and the insert;
		// the unique index turns that into a constraint violation.
		if isDuplicateKey(err) {
			return nil, ErrDuplicateInvitation
		}
		return nil, storageErr(err)
	}
	return inv, nil
}

// Accept transitions a pending invitation to accepted. Only the receptor
// may accept. Accepting an already-accepted invitation is a no-op
// success so a retried button press does not surface an error.
func (s *InvitationService) Accept(ctx context.Context, id uint, actingUser string) (*models.Invitation, error) {
	inv, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Receptor != actingUser {
		return nil, ErrNotReceptor
	}
	if inv.Status == models.InvitationAccepted {
		return inv, nil
	}

	inv.Status = models.InvitationAccepted
	if err := s.db.WithContext(ctx).Save(inv).Error; err != nil {
		return nil, storageErr(err)
	}
	return inv, nil
}

// Reject removes a pending invitation entirely. Only the receptor may
// reject. No rejected state is kept, which is what re-opens Send.
func (s *InvitationService) Reject(ctx context.Context, id uint, actingUser string) error {
	inv, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if inv.Receptor != actingUser {
		return ErrNotReceptor
	}

	if err := s.db.WithContext(ctx).Unscoped().Delete(inv).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// Revoke tears down an accepted share. Either side may revoke: the
// emisor to stop exposing their progress, the receptor to stop seeing
// it. Pending invitations go through Reject instead.
func (s *InvitationService) Revoke(ctx context.Context, id uint, actingUser string) error {
	inv, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if inv.Emisor != actingUser && inv.Receptor != actingUser {
		return ErrNotReceptor
	}
	if inv.Status != models.InvitationAccepted {
		return ErrNotAccepted
	}

	if err := s.db.WithContext(ctx).Unscoped().Delete(inv).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// ListPendingFor returns the invitations waiting on user, oldest first,
// so the inbox renders in a stable order.
func (s *InvitationService) ListPendingFor(ctx context.Context, user string) ([]models.Invitation, error) {
	var invs []models.Invitation
	if err := s.db.WithContext(ctx).
		Where("receptor = ? AND status = ?", user, models.InvitationPending).
		Order("id ASC").
		Find(&invs).Error; err != nil {
		return nil, storageErr(err)
	}
	return invs, nil
}

// ListAcceptedSendersFor returns the usernames whose progress user is
// authorized to view: the emisors of every invitation user accepted.
// Visibility is one-directional; the emisor gains nothing in return.
func (s *InvitationService) ListAcceptedSendersFor(ctx context.Context, user string) ([]string, error) {
	var senders []string
	if err := s.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("receptor = ? AND status = ?", user, models.InvitationAccepted).
		Order("id ASC").
		Pluck("emisor", &senders).Error; err != nil {
		return nil, storageErr(err)
	}
	return senders, nil
}

// CanView reports whether viewer may read owner's progress, i.e. whether
// owner sent an invitation viewer has accepted.
func (s *InvitationService) CanView(ctx context.Context, viewer, owner string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("emisor = ? AND receptor = ? AND status = ?", owner, viewer, models.InvitationAccepted).
		Count(&n).Error; err != nil {
		return false, storageErr(err)
	}
	return n > 0, nil
}

func (s *InvitationService) find(ctx context.Context, id uint) (*models.Invitation, error) {
	var inv models.Invitation
	if err := s.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, storageErr(err)
	}
	return &inv, nil
}
