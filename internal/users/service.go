package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/config"
	"github.com/stitchline/stitchline-backend/pkg/db"
	"github.com/stitchline/stitchline-backend/pkg/db/models"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
	"github.com/stitchline/stitchline-backend/pkg/security"
)

// Service defines the account operations available to an authenticated user.
type Service interface {
	Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
	ChangeEmail(ctx context.Context, userID uuid.UUID, req ChangeEmailRequest) (*UserDTO, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, req UpdateAvatarRequest) (*UserDTO, error)
	Archive(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo        *Repository
	client      *db.Client
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies for the users service.
type ServiceParams struct {
	Repo           *Repository
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

// NewService builds the users service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{
		repo:        params.Repo,
		client:      params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FromModel(user), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error) {
	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if len(updates) == 0 {
		return s.Me(ctx, userID)
	}

	if _, err := s.loadUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(ctx, userID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update user")
	}
	return s.Me(ctx, userID)
}

func (s *service) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	valid, err := security.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "current password is incorrect")
	}

	hash, err := security.HashPassword(req.NewPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	if err := s.repo.UpdateFields(ctx, userID, map[string]any{"password_hash": hash}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update password")
	}
	return nil
}

func (s *service) ChangeEmail(ctx context.Context, userID uuid.UUID, req ChangeEmailRequest) (*UserDTO, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	valid, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "password is incorrect")
	}

	email := strings.ToLower(strings.TrimSpace(req.NewEmail))
	if email == user.Email {
		return FromModel(user), nil
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check email")
	}

	if err := s.repo.UpdateFields(ctx, userID, map[string]any{"email": email}); err != nil {
		if db.IsUniqueViolation(err, "idx_users_email") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update email")
	}
	return s.Me(ctx, userID)
}

func (s *service) UpdateAvatar(ctx context.Context, userID uuid.UUID, req UpdateAvatarRequest) (*UserDTO, error) {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateProfileFields(ctx, userID, map[string]any{"avatar_url": req.AvatarURL}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update avatar")
	}
	return s.Me(ctx, userID)
}

// Archive flags the profile and deactivates the account in one transaction so
// future logins are rejected. The user row and order history stay intact.
func (s *service) Archive(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return err
	}
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.UpdateProfileFields(ctx, userID, map[string]any{"is_archived": true}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "archive profile")
		}
		if err := repo.UpdateFields(ctx, userID, map[string]any{"is_active": false}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivate user")
		}
		return nil
	})
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return err
	}
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, userID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete user")
		}
		return nil
	})
}

func (s *service) loadUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return user, nil
}
