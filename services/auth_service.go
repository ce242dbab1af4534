package services

import (
	"context"
	"errors"

	"github.com/r4mir3zzz/habit-tracker/models"
	"github.com/r4mir3zzz/habit-tracker/utils"

	"gorm.io/gorm"
)

const verificationCodeLen = 6

// AuthService handles registration, email verification and login.
// Accounts start unverified; the emailed code flips them, and only
// verified accounts can log in.
type AuthService struct {
	db               *gorm.DB
	sendVerification func(to, code string) error
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db, sendVerification: utils.SendVerificationEmail}
}

func (s *AuthService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	var taken int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&taken).Error; err != nil {
		return nil, storageErr(err)
	}
	if taken > 0 {
		return nil, ErrUserExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:            email,
		Username:         username,
		PasswordHash:     hash,
		Verified:         false,
		VerificationCode: utils.GenerateVerificationCode(verificationCodeLen),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrUserExists
		}
		return nil, storageErr(err)
	}

	if err := s.sendVerification(user.Email, user.VerificationCode); err != nil {
		return nil, err
	}
	return user, nil
}

// ResendCode issues a fresh code for an unverified account, so a user
// whose registration email never arrived is not stuck behind
// ErrUserExists. Resending for a verified account is a harmless no-op.
func (s *AuthService) ResendCode(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadVerification
		}
		return storageErr(err)
	}
	if user.Verified {
		return nil
	}

	user.VerificationCode = utils.GenerateVerificationCode(verificationCodeLen)
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return storageErr(err)
	}
	return s.sendVerification(user.Email, user.VerificationCode)
}

// Verify checks the emailed code and activates the account. The code is
// cleared once used.
func (s *AuthService) Verify(ctx context.Context, email, code string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadVerification
		}
		return storageErr(err)
	}
	if user.Verified {
		return nil
	}
	if user.VerificationCode == "" || user.VerificationCode != code {
		return ErrBadVerification
	}

	user.Verified = true
	user.VerificationCode = ""
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// Login returns a signed JWT for a verified account with matching
// credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", storageErr(err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	if !user.Verified {
		return "", ErrNotVerified
	}

	return utils.GenerateJWT(user.ID, user.Username)
}
